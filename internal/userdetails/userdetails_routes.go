package userdetails

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the profile endpoints onto the /user group; the
// mixed-case paths are part of the public API.
func RegisterRoutes(g *gin.RouterGroup, handler *Handler) {
	g.POST("/addUserDetails", handler.Add)
	g.PUT("/updateUserDetails/:id", handler.Update)
	g.GET("/getUserDetails", handler.Get)
	g.GET("/getAllUserDetails", handler.GetAll)
	g.PUT("/updatebasic/:user_id", handler.UpdateBasic)
}
