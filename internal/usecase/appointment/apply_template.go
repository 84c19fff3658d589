package appointment

import (
	"context"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/schedule"
)

type ApplyTemplateInput struct {
	SalonID       string
	UserID        string
	AppointmentID string
	TemplateID    string
	StartTime     time.Time
}

// ApplyTemplate expands a split template into concrete segments anchored at
// the requested start and installs them on the appointment. The template rows
// are never mutated.
type ApplyTemplate struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewApplyTemplate(
	repo Repository,
	audit *audit.Dispatcher,
) *ApplyTemplate {
	return &ApplyTemplate{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ApplyTemplate) Execute(
	ctx context.Context,
	in ApplyTemplateInput,
) (*models.Appointment, error) {

	tpl, err := uc.repo.GetTemplate(ctx, in.SalonID, in.TemplateID)
	if err != nil {
		return nil, httperr.ErrBusiness("template_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.SalonID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	segs := toModelSegments(
		schedule.BuildSegments(toDomainTemplate(*tpl), ap.ID, in.StartTime),
	)
	if err := uc.repo.ReplaceSegments(ctx, ap, segs); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.UserID,
		Action:   "template_applied",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"template_id": in.TemplateID},
	})

	return ap, nil
}
