package schedule

import (
	"fmt"
	"strings"
	"time"
)

// ===============================
// Validation
// ===============================

const (
	MinAppointmentMinutes = 15
	MinSegmentMinutes     = 5
)

// FieldError tags a validation failure with the offending field. Collection
// level failures use "segments"; per-segment failures use "segment_<index>".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateAppointment runs every applicable structural check and returns all
// violations. An empty slice means the candidate is valid. Never panics.
func ValidateAppointment(a Appointment) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(a.ClientName) == "" {
		errs = append(errs, FieldError{"client_name", "client name is required"})
	}
	if strings.TrimSpace(a.ServiceName) == "" {
		errs = append(errs, FieldError{"service_name", "service name is required"})
	}
	if a.EmployeeID == "" {
		errs = append(errs, FieldError{"employee_id", "employee is required"})
	}

	switch {
	case a.Start.IsZero():
		errs = append(errs, FieldError{"start", "start time is required"})
	case a.End.IsZero():
		errs = append(errs, FieldError{"end", "end time is required"})
	case !a.End.After(a.Start):
		errs = append(errs, FieldError{"end", "end must be after start"})
	case a.End.Sub(a.Start) < MinAppointmentMinutes*time.Minute:
		errs = append(errs, FieldError{
			"end",
			fmt.Sprintf("appointment must last at least %d minutes", MinAppointmentMinutes),
		})
	}

	return errs
}

// ValidateSegments checks a split's segment list. A split must carry at least
// two steps; every violated segment is reported, not just the first.
func ValidateSegments(segs []Segment) []FieldError {
	var errs []FieldError

	if len(segs) < 2 {
		errs = append(errs, FieldError{"segments", "a split needs at least 2 segments"})
	}

	ordered := make([]Segment, len(segs))
	copy(ordered, segs)
	SortSegments(ordered)

	for i, s := range ordered {
		field := fmt.Sprintf("segment_%d", i)
		if !s.End.After(s.Start) {
			errs = append(errs, FieldError{field, "end must be after start"})
			continue
		}
		if s.End.Sub(s.Start) < MinSegmentMinutes*time.Minute {
			errs = append(errs, FieldError{
				field,
				fmt.Sprintf("segment must last at least %d minutes", MinSegmentMinutes),
			})
		}
	}

	return errs
}
