package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Manish0124/portfolio/internal/services"
	"github.com/Manish0124/portfolio/internal/utils"
	"github.com/Manish0124/portfolio/internal/validation"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
	pageSize      int
	maxPageSize   int
}

func NewReviewHandler(reviewService *services.ReviewService, pageSize, maxPageSize int) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, pageSize: pageSize, maxPageSize: maxPageSize}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.SendInternalError(c, "Internal server error")
		return
	}

	result, err := h.reviewService.Submit(c.Request.Context(), body)
	if err != nil {
		var verr *validation.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.SendValidationError(c, verr.Errors)
		case errors.Is(err, services.ErrPersistence):
			utils.SendInternalError(c, "Failed to save review")
		default:
			utils.SendInternalError(c, "Internal server error")
		}
		return
	}

	utils.SendJSON(c, http.StatusCreated, result)
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.pageSize)))
	if err != nil || limit < 1 {
		limit = h.pageSize
	}
	if limit > h.maxPageSize {
		limit = h.maxPageSize
	}

	reviews, err := h.reviewService.List(c.Request.Context(), page, limit)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch reviews")
		return
	}

	utils.SendJSON(c, http.StatusOK, reviews)
}
