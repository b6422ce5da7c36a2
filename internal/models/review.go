package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a row of user_reviews. IsApproved only ever becomes true through
// an administrator editing the table directly.
type Review struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReviewerName    string    `json:"reviewer_name" gorm:"not null"`
	ReviewerCompany *string   `json:"reviewer_company"`
	ReviewerEmail   string    `json:"reviewer_email" gorm:"not null"`
	Rating          int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	ReviewText      string    `json:"review_text" gorm:"not null"`
	IsApproved      bool      `json:"is_approved" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "user_reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		id, err := NewID()
		if err != nil {
			return err
		}
		r.ID = id
	}
	return nil
}
