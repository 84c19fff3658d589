package appointment

import (
	"context"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/schedule"
)

type SplitAppointmentInput struct {
	SalonID       string
	UserID        string
	AppointmentID string
	Segments      []models.AppointmentSegment
}

// SplitAppointment decomposes an appointment into an ordered segment list.
// The whole list is replaced atomically; there is no partial segment CRUD.
type SplitAppointment struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewSplitAppointment(
	repo Repository,
	audit *audit.Dispatcher,
) *SplitAppointment {
	return &SplitAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SplitAppointment) Execute(
	ctx context.Context,
	in SplitAppointmentInput,
) (*models.Appointment, error) {

	if errs := schedule.ValidateSegments(toDomainSegments(in.Segments)); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	ap, err := uc.repo.GetAppointment(ctx, in.SalonID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.ReplaceSegments(ctx, ap, in.Segments); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.UserID,
		Action:   "appointment_split",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"segments": len(in.Segments)},
	})

	return ap, nil
}
