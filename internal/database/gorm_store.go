package database

import (
	"context"
	"fmt"

	"github.com/Manish0124/portfolio/internal/models"
	"gorm.io/gorm"
)

// GormStore implements Store on Postgres. Writes go through the privileged
// handle; public reads go through the row-restricted one when configured.
type GormStore struct {
	db     *gorm.DB
	reader *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore wraps the privileged handle and an optional public handle.
func NewGormStore(db, public *gorm.DB) *GormStore {
	if db == nil {
		panic("database connection cannot be nil")
	}
	if public == nil {
		public = db
	}
	return &GormStore{db: db, reader: public}
}

func (s *GormStore) InsertContact(ctx context.Context, submission *models.ContactSubmission) error {
	if err := s.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

func (s *GormStore) InsertReview(ctx context.Context, review *models.Review) error {
	review.IsApproved = false
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (s *GormStore) approved(ctx context.Context) *gorm.DB {
	return s.reader.WithContext(ctx).Model(&models.Review{}).Where("is_approved = ?", true)
}

func (s *GormStore) ListApprovedReviews(ctx context.Context, offset, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := s.approved(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list approved reviews: %w", err)
	}
	return reviews, nil
}

func (s *GormStore) CountApprovedReviews(ctx context.Context) (int64, error) {
	var total int64
	if err := s.approved(ctx).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count approved reviews: %w", err)
	}
	return total, nil
}

func (s *GormStore) ApprovedRatings(ctx context.Context) ([]int, error) {
	var ratings []int
	if err := s.approved(ctx).Pluck("rating", &ratings).Error; err != nil {
		return nil, fmt.Errorf("fetch approved ratings: %w", err)
	}
	return ratings, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	var n int64
	if err := s.reader.WithContext(ctx).Model(&models.ContactSubmission{}).Count(&n).Error; err != nil {
		return fmt.Errorf("query contact_submissions: %w", err)
	}
	return nil
}

func (s *GormStore) ProbeWrite(ctx context.Context) error {
	probe := &models.ContactSubmission{
		Name:    "Test Setup",
		Email:   "test@setup.com",
		Subject: "Database Setup Test",
		Message: "This is a test message to verify the table structure",
	}
	if err := s.db.WithContext(ctx).Create(probe).Error; err != nil {
		return fmt.Errorf("insert probe row: %w", err)
	}
	if err := s.db.WithContext(ctx).Delete(&models.ContactSubmission{}, "id = ?", probe.ID).Error; err != nil {
		return fmt.Errorf("delete probe row %s: %w", probe.ID, err)
	}
	return nil
}
