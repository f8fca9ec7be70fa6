package verification

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the approval endpoint onto the /user group; only
// authenticated callers may verify.
func RegisterRoutes(g *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	g.PUT("/verify/:user_id", authMW, handler.Approve)
}
