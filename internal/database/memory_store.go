package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Manish0124/portfolio/internal/models"
	"github.com/Manish0124/portfolio/internal/utils"
	"github.com/google/uuid"
)

// MemoryStore keeps submissions in-process. It backs local development when
// no DATABASE_URL is set and doubles as the store for tests.
type MemoryStore struct {
	mu       sync.RWMutex
	contacts []models.ContactSubmission
	reviews  []models.Review // insertion order
	now      func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: func() time.Time { return time.Now().UTC() }}
}

// WithClock replaces the timestamp source, for deterministic ordering in tests.
func (m *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	m.now = now
	return m
}

func (m *MemoryStore) InsertContact(ctx context.Context, submission *models.ContactSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if submission.ID == uuid.Nil {
		id, err := models.NewID()
		if err != nil {
			return err
		}
		submission.ID = id
	}
	submission.CreatedAt = m.now()
	m.contacts = append(m.contacts, *submission)
	return nil
}

func (m *MemoryStore) InsertReview(ctx context.Context, review *models.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !utils.IsValidRating(review.Rating) {
		return fmt.Errorf("insert review: %w", ErrInvalidRating)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if review.ID == uuid.Nil {
		id, err := models.NewID()
		if err != nil {
			return err
		}
		review.ID = id
	}
	review.IsApproved = false
	review.CreatedAt = m.now()
	review.UpdatedAt = review.CreatedAt
	m.reviews = append(m.reviews, *review)
	return nil
}

// approvedLocked returns approved reviews newest first; among equal
// timestamps the later insertion comes first. Caller holds m.mu.
func (m *MemoryStore) approvedLocked() []models.Review {
	out := make([]models.Review, 0, len(m.reviews))
	for i := len(m.reviews) - 1; i >= 0; i-- {
		if m.reviews[i].IsApproved {
			out = append(out, m.reviews[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (m *MemoryStore) ListApprovedReviews(ctx context.Context, offset, limit int) ([]models.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	approved := m.approvedLocked()
	if offset < 0 {
		offset = 0
	}
	if offset >= len(approved) || limit <= 0 {
		return []models.Review{}, nil
	}
	end := offset + limit
	if end > len(approved) {
		end = len(approved)
	}
	return approved[offset:end], nil
}

func (m *MemoryStore) CountApprovedReviews(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	for _, r := range m.reviews {
		if r.IsApproved {
			total++
		}
	}
	return total, nil
}

func (m *MemoryStore) ApprovedRatings(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	ratings := make([]int, 0, len(m.reviews))
	for _, r := range m.reviews {
		if r.IsApproved {
			ratings = append(ratings, r.Rating)
		}
	}
	return ratings, nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MemoryStore) ProbeWrite(ctx context.Context) error {
	probe := &models.ContactSubmission{Name: "Test Setup", Email: "test@setup.com", Subject: "Database Setup Test"}
	if err := m.InsertContact(ctx, probe); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.contacts {
		if m.contacts[i].ID == probe.ID {
			m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
			return nil
		}
	}
	return errors.New("probe row vanished before delete")
}

// SetApproval flips is_approved the way an administrator would with direct
// table access. The application itself never calls it.
func (m *MemoryStore) SetApproval(id uuid.UUID, approved bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reviews {
		if m.reviews[i].ID == id {
			m.reviews[i].IsApproved = approved
			m.reviews[i].UpdatedAt = m.now()
			return true
		}
	}
	return false
}

// Contacts returns a copy of every stored submission.
func (m *MemoryStore) Contacts() []models.ContactSubmission {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.ContactSubmission(nil), m.contacts...)
}

// Reviews returns a copy of every stored review, approved or not.
func (m *MemoryStore) Reviews() []models.Review {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Review(nil), m.reviews...)
}
