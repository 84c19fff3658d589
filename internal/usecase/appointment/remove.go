package appointment

import (
	"context"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
)

// RemoveAppointment hard-deletes an appointment and its segments. The
// scheduler has no soft delete; cancellations are a status change carried by
// UpdateAppointment.
type RemoveAppointment struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewRemoveAppointment(
	repo Repository,
	audit *audit.Dispatcher,
) *RemoveAppointment {
	return &RemoveAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RemoveAppointment) Execute(
	ctx context.Context,
	salonID string,
	userID string,
	appointmentID string,
) error {

	if _, err := uc.repo.GetAppointment(ctx, salonID, appointmentID); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, salonID, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
