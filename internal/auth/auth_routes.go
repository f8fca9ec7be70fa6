package auth

import (
	"go-ums/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the auth endpoints at /auth; the paths are part of
// the public API and must not change.
func RegisterRoutes(r *gin.Engine, handler *Handler, authMW gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.5, 3), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/status", authMW, handler.Status)
		auth.POST("/refresh", handler.Refresh)
	}
}
