// types/review_page.go
package types

import (
	"time"

	"github.com/Manish0124/portfolio/internal/models"
	"github.com/google/uuid"
)

// PublicReview is a review as shown on the site; the reviewer's email stays private.
type PublicReview struct {
	ID              uuid.UUID `json:"id"`
	ReviewerName    string    `json:"reviewer_name"`
	ReviewerCompany *string   `json:"reviewer_company"`
	Rating          int       `json:"rating"`
	ReviewText      string    `json:"review_text"`
	IsApproved      bool      `json:"is_approved"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewPublicReview(r models.Review) PublicReview {
	return PublicReview{
		ID:              r.ID,
		ReviewerName:    r.ReviewerName,
		ReviewerCompany: r.ReviewerCompany,
		Rating:          r.Rating,
		ReviewText:      r.ReviewText,
		IsApproved:      r.IsApproved,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

type ReviewStats struct {
	TotalReviews       int64       `json:"total_reviews"`
	AverageRating      float64     `json:"average_rating"`
	RatingDistribution map[int]int `json:"rating_distribution"`
}

type ReviewPage struct {
	Reviews    []PublicReview `json:"reviews"`
	Pagination Pagination     `json:"pagination"`
	Stats      ReviewStats    `json:"stats"`
}
