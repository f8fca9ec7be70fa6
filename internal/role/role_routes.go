package role

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, handler *Handler, authMW gin.HandlerFunc) {
	roles := r.Group("/role", authMW)
	{
		roles.POST("", handler.Create)
		roles.GET("", handler.GetAll)
	}
}
