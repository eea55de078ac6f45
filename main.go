package main

import (
	"net/http"

	"ding-dong-api/config"
	"ding-dong-api/dao"
	"ding-dong-api/handlers"
	"ding-dong-api/middleware"
	"ding-dong-api/routes"
	"ding-dong-api/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	log, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	log.Info("database connected and migrated", zap.String("path", cfg.DBPath))

	store := dao.NewStore(db)
	sessions := session.NewManager(db, cfg.BcryptCost)
	h := handlers.New(store, sessions, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))

	// CORS for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "ding-dong-api"})
	})

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Ding-Dong: backend for a simplified version of a food delivery app")
	})

	routes.SetupRoutes(r, h, sessions)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
