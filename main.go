package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"motoconnect-api/config"
	"motoconnect-api/database"
	"motoconnect-api/middleware"
	"motoconnect-api/routes"
	"motoconnect-api/services"
	"motoconnect-api/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logger
	if err := utils.InitLogger(cfg.LogLevel, cfg.LogPath); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer utils.Logger.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		utils.Sugar.Fatalw("failed to connect to database", "error", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		utils.Sugar.Fatalw("failed to migrate database", "error", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "5000" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 20))

	emailService := services.NewEmailService(cfg)

	routes.SetupRoutes(router, db, cfg, emailService)

	utils.Sugar.Infow("starting MotoConnect API server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.Sugar.Fatalw("failed to start server", "error", err)
	}
}
