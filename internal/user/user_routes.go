package user

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the user query endpoints onto the /user group; the
// paths mirror the public API and must not change.
func RegisterRoutes(g *gin.RouterGroup, handler *Handler) {
	g.GET("/alluser", handler.AllUsers)
	g.GET("/filterusers", handler.FilterUsers)
	g.GET("/search", handler.Search)
	g.PUT("/update-status/:user_id", handler.UpdateStatus)
}
