package database

import (
	"context"
	"errors"

	"github.com/Manish0124/portfolio/internal/models"
)

// ErrInvalidRating mirrors the user_reviews rating CHECK constraint.
var ErrInvalidRating = errors.New("rating violates check constraint (1..5)")

// ContactStore persists contact form submissions.
type ContactStore interface {
	// InsertContact stores a new submission and fills in its ID and CreatedAt.
	InsertContact(ctx context.Context, submission *models.ContactSubmission) error
}

// ReviewStore persists reviews and serves the approved-only read path.
type ReviewStore interface {
	// InsertReview stores a new review as not approved, whatever IsApproved holds.
	InsertReview(ctx context.Context, review *models.Review) error
	// ListApprovedReviews returns approved reviews, newest first.
	ListApprovedReviews(ctx context.Context, offset, limit int) ([]models.Review, error)
	CountApprovedReviews(ctx context.Context) (int64, error)
	// ApprovedRatings returns the rating of every approved review.
	ApprovedRatings(ctx context.Context) ([]int, error)
}

// Store is the full persistence gateway, including connectivity diagnostics.
type Store interface {
	ContactStore
	ReviewStore
	Ping(ctx context.Context) error
	// ProbeWrite inserts a throwaway contact row and deletes it again.
	ProbeWrite(ctx context.Context) error
}
