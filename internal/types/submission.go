// types/submission.go
package types

import (
	"github.com/Manish0124/portfolio/internal/validation"
	"github.com/google/uuid"
)

// ContactResult reports which side effects of a contact submission succeeded.
type ContactResult struct {
	Message       string                    `json:"message"`
	DatabaseSaved bool                      `json:"databaseSaved"`
	EmailSent     bool                      `json:"emailSent"`
	Data          validation.ContactPayload `json:"data"`
}

type ReviewSubmission struct {
	Message   string    `json:"message"`
	ReviewID  uuid.UUID `json:"reviewId"`
	EmailSent bool      `json:"emailSent"`
}
