package services

import (
	"context"
	"fmt"

	"github.com/Manish0124/portfolio/internal/database"
	"github.com/Manish0124/portfolio/internal/models"
	"github.com/Manish0124/portfolio/internal/types"
	"github.com/Manish0124/portfolio/internal/validation"
	"github.com/Manish0124/portfolio/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ReviewService accepts reviews for moderation and lists approved ones.
// The stored row is the source of truth, so a failed insert is fatal.
type ReviewService struct {
	store    database.ReviewStore
	notifier Notifier
}

// NewReviewService wires the service. notifier may be nil when mail is not configured.
func NewReviewService(store database.ReviewStore, notifier Notifier) *ReviewService {
	if store == nil {
		panic("review store cannot be nil")
	}
	return &ReviewService{store: store, notifier: notifier}
}

// Submit validates body and stores it as a pending review.
func (s *ReviewService) Submit(ctx context.Context, body []byte) (*types.ReviewSubmission, error) {
	payload, err := validation.ParseReview(body)
	if err != nil {
		return nil, err
	}

	log := logger.WithFields(logrus.Fields{
		"reviewer_name": payload.ReviewerName,
		"rating":        payload.Rating,
		"review_length": len([]rune(payload.ReviewText)),
	})
	log.Info("Review submission")

	review := &models.Review{
		ReviewerName:    payload.ReviewerName,
		ReviewerCompany: payload.ReviewerCompany,
		ReviewerEmail:   payload.ReviewerEmail,
		Rating:          payload.Rating,
		ReviewText:      payload.ReviewText,
		IsApproved:      false,
	}
	if err := s.store.InsertReview(ctx, review); err != nil {
		log.WithError(err).Error("Failed to save review")
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	log = log.WithField("review_id", review.ID)
	log.Info("Review saved, pending approval")

	emailSent := false
	if s.notifier != nil {
		delivery := s.notifier.NotifyReview(ctx, review)
		if delivery.Err != nil {
			log.WithError(delivery.Err).Error("Failed to send review notification email")
		}
		emailSent = delivery.Sent
	}

	return &types.ReviewSubmission{
		Message:   "Review submitted successfully! It will be displayed after approval.",
		ReviewID:  review.ID,
		EmailSent: emailSent,
	}, nil
}

// List returns one page of approved reviews with stats over every approved
// review. The page, count and ratings are separate reads, so a concurrent
// approval can briefly skew them against each other.
func (s *ReviewService) List(ctx context.Context, page, limit int) (*types.ReviewPage, error) {
	var reviews []models.Review
	if offset, ok := pageOffset(page, limit); ok {
		var err error
		reviews, err = s.store.ListApprovedReviews(ctx, offset, limit)
		if err != nil {
			logger.WithError(err).Error("Failed to fetch reviews")
			return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}

	total, err := s.store.CountApprovedReviews(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to count reviews")
		total = 0
	}

	ratings, err := s.store.ApprovedRatings(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to fetch review ratings")
		ratings = nil
	}

	out := make([]types.PublicReview, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, types.NewPublicReview(r))
	}

	return &types.ReviewPage{
		Reviews:    out,
		Pagination: paginate(page, limit, total),
		Stats:      summarizeRatings(total, ratings),
	}, nil
}
