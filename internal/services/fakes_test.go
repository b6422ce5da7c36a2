package services

import (
	"context"
	"errors"
	"sync"

	"github.com/Manish0124/portfolio/internal/models"
	"github.com/Manish0124/portfolio/internal/validation"
	"gopkg.in/gomail.v2"
)

var errStoreDown = errors.New("connection refused")

// ---------------------------------------------------------------------------
// fakeNotifier records notification attempts
// ---------------------------------------------------------------------------

type fakeNotifier struct {
	mu       sync.Mutex
	fail     error
	contacts []validation.ContactPayload
	saved    []bool
	reviews  []models.Review
}

func (n *fakeNotifier) NotifyContact(ctx context.Context, payload *validation.ContactPayload, databaseSaved bool) Delivery {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.contacts = append(n.contacts, *payload)
	n.saved = append(n.saved, databaseSaved)
	if n.fail != nil {
		return Delivery{Err: n.fail}
	}
	return Delivery{Sent: true}
}

func (n *fakeNotifier) NotifyReview(ctx context.Context, review *models.Review) Delivery {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reviews = append(n.reviews, *review)
	if n.fail != nil {
		return Delivery{Err: n.fail}
	}
	return Delivery{Sent: true}
}

func (n *fakeNotifier) calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.contacts) + len(n.reviews)
}

// ---------------------------------------------------------------------------
// mockStore injects failures per operation
// ---------------------------------------------------------------------------

type mockStore struct {
	insertContactFunc func(ctx context.Context, s *models.ContactSubmission) error
	insertReviewFunc  func(ctx context.Context, r *models.Review) error
	listFunc          func(ctx context.Context, offset, limit int) ([]models.Review, error)
	countFunc         func(ctx context.Context) (int64, error)
	ratingsFunc       func(ctx context.Context) ([]int, error)

	contactInserts int
	reviewInserts  int
}

func (m *mockStore) InsertContact(ctx context.Context, s *models.ContactSubmission) error {
	m.contactInserts++
	if m.insertContactFunc != nil {
		return m.insertContactFunc(ctx, s)
	}
	return nil
}

func (m *mockStore) InsertReview(ctx context.Context, r *models.Review) error {
	m.reviewInserts++
	if m.insertReviewFunc != nil {
		return m.insertReviewFunc(ctx, r)
	}
	return nil
}

func (m *mockStore) ListApprovedReviews(ctx context.Context, offset, limit int) ([]models.Review, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *mockStore) CountApprovedReviews(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockStore) ApprovedRatings(ctx context.Context) ([]int, error) {
	if m.ratingsFunc != nil {
		return m.ratingsFunc(ctx)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// fakeSender captures gomail messages instead of dialing SMTP
// ---------------------------------------------------------------------------

type fakeSender struct {
	messages []*gomail.Message
	err      error
}

func (s *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, m...)
	return nil
}
