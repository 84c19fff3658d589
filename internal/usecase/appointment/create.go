package appointment

import (
	"context"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/schedule"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID string
	UserID  string

	EmployeeID      string
	ClientName      string
	ServiceName     string
	ServiceCategory string
	Status          string
	Notes           string
	CustomerID      string

	Start time.Time
	End   time.Time

	// Segments is optional; when present the appointment window is derived
	// from it and Start/End are ignored.
	Segments []models.AppointmentSegment
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap := &models.Appointment{
		SalonID:         in.SalonID,
		EmployeeID:      in.EmployeeID,
		ClientName:      in.ClientName,
		ServiceName:     in.ServiceName,
		ServiceCategory: in.ServiceCategory,
		Status:          in.Status,
		Notes:           in.Notes,
		CustomerID:      in.CustomerID,
		StartTime:       in.Start,
		EndTime:         in.End,
		Segments:        in.Segments,
	}
	if ap.Status == "" {
		ap.Status = string(schedule.StatusConfirmed)
	}
	ap.SyncFromSegments()

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
	if len(ap.Segments) >= 2 {
		if errs := schedule.ValidateSegments(toDomainSegments(ap.Segments)); len(errs) > 0 {
			return nil, &ValidationError{Errors: errs}
		}
	}

	if _, err := uc.repo.GetEmployee(ctx, in.SalonID, in.EmployeeID); err != nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}

	ok, err := uc.repo.IsWithinWorkingHours(ctx, in.EmployeeID, ap.StartTime, ap.EndTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.EmployeeID,
		ap.StartTime,
		ap.EndTime,
		"",
	); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
