package app

import (
	"go-ums/internal/auth"
	"go-ums/internal/config"
	"go-ums/internal/middleware"
	"go-ums/internal/office"
	"go-ums/internal/role"
	"go-ums/internal/user"
	"go-ums/internal/userdetails"
	"go-ums/internal/verification"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, cfg *config.Config, db *gorm.DB, rdb *redis.Client) {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	userRepo := user.NewRepository(db)
	detailsRepo := userdetails.NewRepository(db)
	verificationRepo := verification.NewRepository(db)
	roleRepo := role.NewRepository(db)
	officeRepo := office.NewRepository(db)

	// --- Credential service ---
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTRefreshSecret)
	authMW := auth.Middleware(tokens)

	// --- Services ---
	authService := auth.NewService(db, tokens, userRepo, detailsRepo, verificationRepo)
	userService := user.NewService(userRepo)
	roleService := role.NewService(roleRepo, rdb)
	detailsService := userdetails.NewService(db, detailsRepo, userRepo, roleService)
	verificationService := verification.NewService(verificationRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	detailsHandler := userdetails.NewHandler(detailsService)
	verificationHandler := verification.NewHandler(verificationService)
	roleHandler := role.NewHandler(roleService)
	officeHandler := office.NewHandler(officeRepo)

	// --- Routes ---
	auth.RegisterRoutes(router, authHandler, authMW)

	userGroup := router.Group("/user")
	{
		user.RegisterRoutes(userGroup, userHandler)
		userdetails.RegisterRoutes(userGroup, detailsHandler)
		verification.RegisterRoutes(userGroup, verificationHandler, authMW)
	}

	role.RegisterRoutes(router, roleHandler, authMW)
	office.RegisterRoutes(router, officeHandler, authMW)
}
