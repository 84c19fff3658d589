package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SplitTemplate is a reusable blueprint of treatment steps. Applying one to an
// appointment never touches the template rows.
type SplitTemplate struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID string `gorm:"type:uuid;index" json:"salon_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Category    string `gorm:"size:30" json:"category"`
	Description string `gorm:"size:255" json:"description"`

	Steps []SplitTemplateStep `gorm:"constraint:OnDelete:CASCADE;" json:"steps"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *SplitTemplate) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type SplitTemplateStep struct {
	ID              string `gorm:"type:uuid;primaryKey" json:"id"`
	SplitTemplateID string `gorm:"type:uuid;index" json:"split_template_id"`

	StepType        string `gorm:"size:20;not null" json:"step_type"`
	Label           string `gorm:"size:100" json:"label"`
	DurationMinutes int    `json:"duration_minutes"`
	SortOrder       int    `json:"sort_order"`
	IsGap           bool   `json:"is_gap"`
}

func (s *SplitTemplateStep) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
