package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID string `gorm:"type:uuid;index" json:"salon_id"`

	EmployeeID string   `gorm:"type:uuid;index" json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientName      string `gorm:"size:100;not null" json:"client_name"`
	ServiceName     string `gorm:"size:100;not null" json:"service_name"`
	ServiceCategory string `gorm:"size:30" json:"service_category"`

	// StartTime/EndTime are recomputed from the segment list on every segment
	// write; with segments present they are derived columns, not inputs.
	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CustomerID string `gorm:"type:uuid" json:"customer_id"`

	Segments []AppointmentSegment `gorm:"constraint:OnDelete:CASCADE;" json:"segments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// SyncFromSegments re-derives the appointment window from its segments.
func (a *Appointment) SyncFromSegments() {
	if len(a.Segments) == 0 {
		return
	}
	start := a.Segments[0].StartTime
	end := a.Segments[0].EndTime
	for _, s := range a.Segments[1:] {
		if s.StartTime.Before(start) {
			start = s.StartTime
		}
		if s.EndTime.After(end) {
			end = s.EndTime
		}
	}
	a.StartTime = start
	a.EndTime = end
}

type AppointmentSegment struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID string `gorm:"type:uuid;index" json:"appointment_id"`

	SegmentType string `gorm:"size:20;not null" json:"segment_type"`
	Label       string `gorm:"size:100" json:"label"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	SortOrder int       `json:"sort_order"`

	ProductGrams *float64 `json:"product_grams"`
	Notes        string   `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AppointmentSegment) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
