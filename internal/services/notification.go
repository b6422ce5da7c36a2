package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Manish0124/portfolio/internal/models"
	"github.com/Manish0124/portfolio/internal/validation"
)

// Delivery is the outcome of a best-effort notification. A failed delivery
// never fails the request that triggered it.
type Delivery struct {
	Sent bool
	Err  error
}

// Notifier tells the site owner about new submissions.
type Notifier interface {
	NotifyContact(ctx context.Context, payload *validation.ContactPayload, databaseSaved bool) Delivery
	NotifyReview(ctx context.Context, review *models.Review) Delivery
}

// EmailNotifier sends notifications to a single owner mailbox.
type EmailNotifier struct {
	email *EmailService
	to    string
}

var _ Notifier = (*EmailNotifier)(nil)

func NewEmailNotifier(email *EmailService, to string) *EmailNotifier {
	return &EmailNotifier{email: email, to: to}
}

func (n *EmailNotifier) NotifyContact(ctx context.Context, payload *validation.ContactPayload, databaseSaved bool) Delivery {
	return n.send(ctx, Email{
		To:      n.to,
		ReplyTo: payload.Email,
		Subject: "New Contact Form Submission: " + payload.Subject,
		HTML:    contactEmailBody(payload, databaseSaved),
	})
}

func (n *EmailNotifier) NotifyReview(ctx context.Context, review *models.Review) Delivery {
	return n.send(ctx, Email{
		To:      n.to,
		Subject: fmt.Sprintf("New Review Submission - %d stars", review.Rating),
		HTML:    reviewEmailBody(review),
	})
}

func (n *EmailNotifier) send(ctx context.Context, email Email) Delivery {
	if err := ctx.Err(); err != nil {
		return Delivery{Err: err}
	}
	if err := n.email.SendEmail(email); err != nil {
		return Delivery{Err: err}
	}
	return Delivery{Sent: true}
}

func contactEmailBody(p *validation.ContactPayload, databaseSaved bool) string {
	saved := "No"
	if databaseSaved {
		saved = "Yes"
	}
	message := strings.ReplaceAll(html.EscapeString(p.Message), "\n", "<br>")

	return fmt.Sprintf(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><small>Database saved: %s</small></p>
`, html.EscapeString(p.Name), html.EscapeString(p.Email), html.EscapeString(p.Subject), message, saved)
}

func ratingStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func reviewEmailBody(r *models.Review) string {
	company := "Not provided"
	if r.ReviewerCompany != nil {
		company = html.EscapeString(*r.ReviewerCompany)
	}

	return fmt.Sprintf(`
<h2>New Review Submission</h2>
<p><strong>Reviewer:</strong> %s</p>
<p><strong>Company:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Rating:</strong> %s (%d/5)</p>
<p><strong>Review:</strong></p>
<blockquote style="border-left: 4px solid #ccc; margin: 0; padding-left: 16px; color: #666;">
  %s
</blockquote>
<hr>
<p><small>Review ID: %s</small></p>
<p><small>This review is pending approval and will not be displayed publicly until approved.</small></p>
`, html.EscapeString(r.ReviewerName), company, html.EscapeString(r.ReviewerEmail),
		ratingStars(r.Rating), r.Rating, html.EscapeString(r.ReviewText), r.ID)
}
