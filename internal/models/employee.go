package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is the calendar resource: one column per employee per day.
// Read-only reference data as far as the scheduler is concerned.
type Employee struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID string `gorm:"type:uuid;index" json:"salon_id"`
	Salon   Salon  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name      string `gorm:"size:100;not null" json:"name"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`
	Role      string `gorm:"size:50" json:"role"`
	Color     string `gorm:"size:10" json:"color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Employee) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
