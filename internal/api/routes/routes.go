package routes

import (
	"github.com/Manish0124/portfolio/internal/api/handlers"
	"github.com/Manish0124/portfolio/internal/api/middleware"
	"github.com/Manish0124/portfolio/internal/config"
	"github.com/Manish0124/portfolio/internal/database"
	"github.com/Manish0124/portfolio/internal/services"
	"github.com/Manish0124/portfolio/pkg/logger"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers middleware and endpoints. notifier is nil when
// outbound mail is not configured.
func SetupRoutes(router *gin.Engine, cfg *config.Config, store database.Store, notifier services.Notifier) {
	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))

	// Initialize services
	contactService := services.NewContactService(store, notifier)
	reviewService := services.NewReviewService(store, notifier)

	// Initialize handlers
	contactHandler := handlers.NewContactHandler(contactService)
	reviewHandler := handlers.NewReviewHandler(reviewService, cfg.ReviewsPageSize, cfg.ReviewsMaxPage)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	})

	api := router.Group("/api")

	api.POST("/contact", contactHandler.Submit)

	reviews := api.Group("/reviews")
	{
		reviews.GET("", reviewHandler.GetReviews)
		reviews.POST("", reviewHandler.CreateReview)
	}

	if cfg.Diagnostics {
		diagnosticsHandler := handlers.NewDiagnosticsHandler(store)
		diagnostics := api.Group("/diagnostics")
		{
			diagnostics.GET("/database", diagnosticsHandler.CheckConnection)
			diagnostics.POST("/database", diagnosticsHandler.CheckWrite)
		}
	}

	logger.Info("Routes initialized successfully")
}
