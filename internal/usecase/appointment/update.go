package appointment

import (
	"context"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/schedule"
)

type UpdateAppointmentInput struct {
	SalonID       string
	UserID        string
	AppointmentID string

	EmployeeID      string
	ClientName      string
	ServiceName     string
	ServiceCategory string
	Status          string
	Notes           string

	Start time.Time
	End   time.Time

	Segments []models.AppointmentSegment
}

// UpdateAppointment covers every edit the calendar commits: drag to a new
// time or employee, edge resize, field edits and explicit status changes.
type UpdateAppointment struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.SalonID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap.EmployeeID = in.EmployeeID
	ap.ClientName = in.ClientName
	ap.ServiceName = in.ServiceName
	ap.ServiceCategory = in.ServiceCategory
	if in.Status != "" {
		ap.Status = in.Status
	}
	ap.Notes = in.Notes
	ap.StartTime = in.Start
	ap.EndTime = in.End

	segs := in.Segments
	if len(segs) > 0 {
		probe := *ap
		probe.Segments = segs
		probe.SyncFromSegments()
		ap.StartTime = probe.StartTime
		ap.EndTime = probe.EndTime
	}

	candidate := schedule.Appointment{
		EmployeeID:  ap.EmployeeID,
		ClientName:  ap.ClientName,
		ServiceName: ap.ServiceName,
		Start:       ap.StartTime,
		End:         ap.EndTime,
	}
	if errs := schedule.ValidateAppointment(candidate); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	ok, err := uc.repo.IsWithinWorkingHours(ctx, ap.EmployeeID, ap.StartTime, ap.EndTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		ap.EmployeeID,
		ap.StartTime,
		ap.EndTime,
		ap.ID,
	); err != nil {
		return nil, err
	}

	if len(segs) > 0 {
		if err := uc.repo.ReplaceSegments(ctx, ap, segs); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
