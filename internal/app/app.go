package app

import (
	"go-ums/internal/config"
	"go-ums/internal/office"
	"go-ums/internal/role"
	"go-ums/internal/shared/connection"
	"go-ums/internal/user"
	"go-ums/internal/userdetails"
	"go-ums/internal/verification"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, synchronizes the schema and wires
// every module into the router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	db, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&office.Office{},
		&role.Role{},
		&user.User{},
		&userdetails.UserDetails{},
		&verification.Verification{},
	); err != nil {
		return err
	}
	zap.L().Info("database schema synchronized")

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	registerModules(router, cfg, db, rdb)

	return nil
}
