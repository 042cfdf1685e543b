package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is the persisted record of one analyze request, kept for
// history and debugging. The full result is stored as JSON.
type Analysis struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID   *uuid.UUID `gorm:"type:uuid" json:"document_id,omitempty"`
	TargetRole   string     `gorm:"type:text;not null" json:"target_role"`
	OverallScore float64    `gorm:"type:decimal(5,2)" json:"overall_score"`
	ResultJSON   string     `gorm:"type:jsonb" json:"-"`
	CreatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}
