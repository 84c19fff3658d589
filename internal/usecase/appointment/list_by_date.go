package appointment

import (
	"context"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

type ListAppointmentsByDate struct {
	repo Repository
}

func NewListAppointmentsByDate(repo Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

// Execute lists a salon's appointments for the calendar day containing date,
// in the salon's local frame. A zero date lists everything.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	salonID string,
	date time.Time,
) ([]models.Appointment, error) {

	if date.IsZero() {
		return uc.repo.ListAppointments(ctx, salonID)
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	return uc.repo.ListAppointmentsForDay(ctx, salonID, dayStart, dayEnd)
}
