package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Manish0124/portfolio/internal/models"
	"github.com/Manish0124/portfolio/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailNotifier_NotifyContact(t *testing.T) {
	t.Parallel()
	sender := &fakeSender{}
	notifier := NewEmailNotifier(NewEmailServiceWithSender("Portfolio <noreply@example.com>", sender), "owner@example.com")

	delivery := notifier.NotifyContact(context.Background(), &validation.ContactPayload{
		Name: "Ana", Email: "ana@x.com", Subject: "Hiring", Message: "Hello\nthere",
	}, true)

	require.NoError(t, delivery.Err)
	assert.True(t, delivery.Sent)
	require.Len(t, sender.messages, 1)
	m := sender.messages[0]
	assert.Equal(t, []string{"owner@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"ana@x.com"}, m.GetHeader("Reply-To"))
	assert.Equal(t, []string{"New Contact Form Submission: Hiring"}, m.GetHeader("Subject"))
}

func TestEmailNotifier_SendFailure(t *testing.T) {
	t.Parallel()
	sender := &fakeSender{err: errors.New("dial tcp: connection refused")}
	notifier := NewEmailNotifier(NewEmailServiceWithSender("noreply@example.com", sender), "owner@example.com")

	delivery := notifier.NotifyReview(context.Background(), &models.Review{ID: uuid.New(), Rating: 4})

	assert.False(t, delivery.Sent)
	assert.Error(t, delivery.Err)
}

func TestEmailNotifier_CanceledContextSkipsSend(t *testing.T) {
	t.Parallel()
	sender := &fakeSender{}
	notifier := NewEmailNotifier(NewEmailServiceWithSender("noreply@example.com", sender), "owner@example.com")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	delivery := notifier.NotifyReview(ctx, &models.Review{ID: uuid.New(), Rating: 4})

	assert.False(t, delivery.Sent)
	assert.ErrorIs(t, delivery.Err, context.Canceled)
	assert.Empty(t, sender.messages)
}

func TestEmailService_RequiresRecipient(t *testing.T) {
	t.Parallel()
	svc := NewEmailServiceWithSender("noreply@example.com", &fakeSender{})

	assert.Error(t, svc.SendEmail(Email{Subject: "x"}))
}

func TestContactEmailBody_EscapesInput(t *testing.T) {
	t.Parallel()

	body := contactEmailBody(&validation.ContactPayload{
		Name: "<script>alert(1)</script>", Email: "a@b.co", Subject: "Hi", Message: "line one\nline two",
	}, false)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "line one<br>line two")
	assert.Contains(t, body, "Database saved: No")
}

func TestReviewEmailBody(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	company := "Acme & Co"

	body := reviewEmailBody(&models.Review{
		ID: id, ReviewerName: "Ana", ReviewerCompany: &company, ReviewerEmail: "ana@x.com", Rating: 4, ReviewText: "Great!",
	})

	assert.Contains(t, body, "★★★★☆ (4/5)")
	assert.Contains(t, body, "Acme &amp; Co")
	assert.Contains(t, body, id.String())
	assert.Contains(t, body, "pending approval")

	noCompany := reviewEmailBody(&models.Review{ID: id, ReviewerName: "Ana", Rating: 1})
	assert.Contains(t, noCompany, "Not provided")
	assert.Contains(t, noCompany, "★☆☆☆☆")
}
