package models

import "github.com/google/uuid"

// NewID returns a time-ordered (version 7) UUID. IDs generated by one process
// sort in creation order, which breaks created_at ties in listings.
func NewID() (uuid.UUID, error) {
	return uuid.NewV7()
}
