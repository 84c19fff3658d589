package appointment

import (
	"context"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

// Repository is the persistence port the appointment use cases depend on.
type Repository interface {
	// -------- Salon / staff --------
	GetSalonByID(
		ctx context.Context,
		id string,
	) (*models.Salon, error)

	GetEmployee(
		ctx context.Context,
		salonID string,
		employeeID string,
	) (*models.Employee, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		salonID string,
		appointmentID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		salonID string,
		appointmentID string,
	) error

	// ReplaceSegments swaps the appointment's whole segment list atomically
	// and persists the re-derived start/end.
	ReplaceSegments(
		ctx context.Context,
		ap *models.Appointment,
		segments []models.AppointmentSegment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		employeeID string,
		start time.Time,
		end time.Time,
		excludeID string,
	) error

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		salonID string,
	) ([]models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		salonID string,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Working hours --------
	IsWithinWorkingHours(
		ctx context.Context,
		employeeID string,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Templates --------
	GetTemplate(
		ctx context.Context,
		salonID string,
		templateID string,
	) (*models.SplitTemplate, error)

	ListTemplates(
		ctx context.Context,
		salonID string,
	) ([]models.SplitTemplate, error)
}
