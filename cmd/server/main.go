package main

import (
	"context"
	"log"
	"time"

	"github.com/Manish0124/portfolio/internal/api/routes"
	"github.com/Manish0124/portfolio/internal/config"
	"github.com/Manish0124/portfolio/internal/database"
	"github.com/Manish0124/portfolio/internal/services"
	"github.com/Manish0124/portfolio/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger.Init()

	// Load configuration
	cfg := config.Load()

	// Initialize store
	store := openStore(cfg)

	// Outbound mail is optional
	var notifier services.Notifier
	if cfg.MailConfigured() {
		notifier = services.NewEmailNotifier(services.NewEmailService(cfg), cfg.NotifyEmail)
	} else {
		logger.Warn("SMTP credentials or NOTIFY_EMAIL not set, email notifications disabled")
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := gin.New()

	// Setup routes
	routes.SetupRoutes(router, cfg, store, notifier)

	logger.Info("Server starting on port " + cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", err)
	}
}

func openStore(cfg *config.Config) database.Store {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory store")
		return database.NewMemoryStore()
	}

	if cfg.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		results, err := database.Migrate(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("Failed to run migrations", err)
		}
		logger.Info("Applied migrations: ", len(results))
	}

	db, err := database.Init(cfg.DatabaseURL, cfg.IsProduction())
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}

	var public = db
	if cfg.DatabasePublicURL != "" {
		public, err = database.Init(cfg.DatabasePublicURL, cfg.IsProduction())
		if err != nil {
			logger.Fatal("Failed to initialize public database handle", err)
		}
	}

	return database.NewGormStore(db, public)
}
