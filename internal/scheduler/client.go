// Package scheduler owns the in-memory appointment and template state behind
// a calendar view: optimistic local mutation, best-effort server
// reconciliation, and degradation to a built-in dataset when the backend is
// unreachable.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/wire"
)

// Client is the REST collaborator the controller consumes. Implementations
// must honor context deadlines; a cancelled call is reported as an error.
type Client interface {
	GetAppointments(ctx context.Context) ([]wire.Appointment, error)
	GetTemplates(ctx context.Context) ([]wire.Template, error)
	GetEmployees(ctx context.Context) ([]wire.Employee, error)

	CreateAppointment(ctx context.Context, ap wire.Appointment) (wire.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, ap wire.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error

	SplitAppointment(ctx context.Context, id string, segments []wire.Segment) error
	ApplyTemplate(ctx context.Context, appointmentID, templateID string, startTime time.Time) error
}

// Mode selects the data source once at startup. It is injected by the hosting
// environment instead of being inferred from the network location.
type Mode string

const (
	ModeLive Mode = "live"
	ModeMock Mode = "mock"
)

// ConflictPolicy decides what a time-placing mutation does when the target
// interval overlaps an existing appointment for the same employee.
type ConflictPolicy string

const (
	ConflictBlock  ConflictPolicy = "block"
	ConflictWarn   ConflictPolicy = "warn"
	ConflictIgnore ConflictPolicy = "ignore"
)

var (
	ErrConflict   = errors.New("appointment overlaps an existing appointment")
	ErrNotFound   = errors.New("appointment not found")
	ErrNoTemplate = errors.New("template not found")
)
