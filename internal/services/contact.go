package services

import (
	"context"

	"github.com/Manish0124/portfolio/internal/database"
	"github.com/Manish0124/portfolio/internal/models"
	"github.com/Manish0124/portfolio/internal/types"
	"github.com/Manish0124/portfolio/internal/validation"
	"github.com/Manish0124/portfolio/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ContactService handles contact form submissions. Email is the channel of
// record; the stored row is an audit trail, so a failed insert is not fatal.
type ContactService struct {
	store    database.ContactStore
	notifier Notifier
}

// NewContactService wires the service. notifier may be nil when mail is not configured.
func NewContactService(store database.ContactStore, notifier Notifier) *ContactService {
	if store == nil {
		panic("contact store cannot be nil")
	}
	return &ContactService{store: store, notifier: notifier}
}

// Submit validates body, then stores and forwards the message. Only a
// validation failure is returned as an error.
func (s *ContactService) Submit(ctx context.Context, body []byte) (*types.ContactResult, error) {
	payload, err := validation.ParseContact(body)
	if err != nil {
		return nil, err
	}

	log := logger.WithFields(logrus.Fields{"subject": payload.Subject, "message_length": len(payload.Message)})
	log.Info("Contact form submission")

	submission := &models.ContactSubmission{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	}

	databaseSaved := true
	if err := s.store.InsertContact(ctx, submission); err != nil {
		databaseSaved = false
		log.WithError(err).Error("Failed to save contact submission, continuing without database")
	} else {
		log.WithField("contact_id", submission.ID).Info("Contact submission saved")
	}

	emailSent := false
	if s.notifier != nil {
		delivery := s.notifier.NotifyContact(ctx, payload, databaseSaved)
		if delivery.Err != nil {
			log.WithError(delivery.Err).Error("Failed to send contact notification email")
		}
		emailSent = delivery.Sent
	}

	return &types.ContactResult{
		Message:       "Message received successfully",
		DatabaseSaved: databaseSaved,
		EmailSent:     emailSent,
		Data:          *payload,
	}, nil
}
