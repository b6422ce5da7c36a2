package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func SendJSON(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

func SendError(c *gin.Context, statusCode int, message string, details interface{}) {
	c.JSON(statusCode, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

func SendValidationError(c *gin.Context, details interface{}) {
	SendError(c, http.StatusBadRequest, "Invalid form data", details)
}

// SendInternalError never echoes driver errors back to the client.
func SendInternalError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, message, nil)
}
