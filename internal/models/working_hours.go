package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkingHours holds one employee's window for one weekday. Times are local
// "15:04" strings in the salon's time frame; BreakStart/BreakEnd carve out an
// optional mid-day break.
type WorkingHours struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID string `gorm:"type:uuid;index:idx_wh_employee_weekday" json:"employee_id"`

	Weekday int `gorm:"index:idx_wh_employee_weekday" json:"weekday"`

	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`
	Active     bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *WorkingHours) BeforeCreate(*gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
