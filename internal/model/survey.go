package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Survey is a generated question set for a product idea.
type Survey struct {
	ID          string    `json:"id" gorm:"type:char(36);primaryKey"`
	ProductIdea string    `json:"productIdea" gorm:"type:text;not null"`
	Questions   []string  `json:"questions" gorm:"type:json;serializer:json"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Survey) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
