package office

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, handler *Handler, authMW gin.HandlerFunc) {
	offices := r.Group("/office", authMW)
	{
		offices.POST("", handler.Create)
		offices.GET("", handler.GetAll)
	}
}
