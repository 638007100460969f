package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeSlot is an interview window offered by a creator and claimed by at most one SME.
// IsBooked and SMEID always change together.
type TimeSlot struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	CreatorID string    `json:"creatorId" gorm:"size:64;not null;index"`
	SMEID     *string   `json:"smeId" gorm:"column:sme_id;size:64;index"`
	Date      time.Time `json:"date" gorm:"not null"`
	StartTime string    `json:"startTime" gorm:"size:32;not null"`
	EndTime   string    `json:"endTime" gorm:"size:32;not null"`
	IsBooked  bool      `json:"isBooked" gorm:"not null;default:false;index"`
	Questions []string  `json:"questions" gorm:"type:json;serializer:json"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate sets the id and normalizes an empty question list.
func (t *TimeSlot) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Questions == nil {
		t.Questions = []string{}
	}
	return nil
}
