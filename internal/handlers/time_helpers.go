package handlers

import (
	"time"

	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/timezone"
)

// salonLocation resolves the salon's single local time frame, falling back to
// the default location when the salon row is missing or has no timezone.
func salonLocation(db *gorm.DB, salonID string) *time.Location {
	var salon models.Salon
	if err := db.First(&salon, "id = ?", salonID).Error; err == nil {
		return timezone.Location(salon.Timezone)
	}
	return timezone.Location("")
}

// parseDateForSalon parses a "2006-01-02" date in the salon's local frame.
func parseDateForSalon(db *gorm.DB, salonID, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, salonLocation(db, salonID))
}
