package handlers

import (
	"errors"
	"net/http"

	"github.com/Manish0124/portfolio/internal/services"
	"github.com/Manish0124/portfolio/internal/utils"
	"github.com/Manish0124/portfolio/internal/validation"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Internal server error", "failed to read request body")
		return
	}

	result, err := h.contactService.Submit(c.Request.Context(), body)
	if err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			utils.SendValidationError(c, verr.Errors)
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Internal server error", "unexpected error")
		return
	}

	utils.SendJSON(c, http.StatusOK, result)
}
