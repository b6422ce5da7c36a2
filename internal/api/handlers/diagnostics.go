package handlers

import (
	"net/http"

	"github.com/Manish0124/portfolio/internal/database"
	"github.com/Manish0124/portfolio/pkg/logger"
	"github.com/gin-gonic/gin"
)

// DiagnosticsHandler checks that the contact table is reachable and writable.
type DiagnosticsHandler struct {
	store database.Store
}

func NewDiagnosticsHandler(store database.Store) *DiagnosticsHandler {
	return &DiagnosticsHandler{store: store}
}

func (h *DiagnosticsHandler) CheckConnection(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		logger.WithError(err).Error("Database connection check failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to connect to database",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connection successful",
	})
}

func (h *DiagnosticsHandler) CheckWrite(c *gin.Context) {
	if err := h.store.ProbeWrite(c.Request.Context()); err != nil {
		logger.WithError(err).Error("Database write check failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Table does not exist or is not writable. Run the migrations first.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database table exists and is working correctly",
	})
}
