package wire

import (
	"errors"
	"fmt"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/schedule"
)

// ErrNoSchedule marks a wire appointment carrying no segments: the wire format
// keeps time only on segments, so such a record has no usable schedule. The
// original UI invented a one-hour window at "now" in this case; that masked
// missing server data, so it is surfaced as an error instead.
var ErrNoSchedule = errors.New("wire appointment has no segments")

// ===============================
// Wire -> domain
// ===============================

func ToDomainAppointment(w Appointment) (schedule.Appointment, error) {
	ap := schedule.Appointment{
		ID:          w.ID,
		EmployeeID:  w.EmployeeID,
		ClientName:  w.ClientName,
		ServiceName: w.ServiceName,
		Category:    schedule.ServiceCategory(w.ServiceCategory),
		Status:      schedule.Status(w.Status),
		Notes:       deref(w.Notes),
		GroupID:     w.ID,
		SalonID:     w.SalonID,
		CustomerID:  w.CustomerID,
	}

	if len(w.Segments) == 0 {
		return ap, fmt.Errorf("appointment %s: %w", w.ID, ErrNoSchedule)
	}

	for _, ws := range w.Segments {
		seg, err := ToDomainSegment(ws, w.ID)
		if err != nil {
			return ap, err
		}
		ap.Segments = append(ap.Segments, seg)
	}
	ap.SyncFromSegments()

	return ap, nil
}

func ToDomainSegment(w Segment, appointmentID string) (schedule.Segment, error) {
	start, err := time.Parse(time.RFC3339, w.StartTime)
	if err != nil {
		return schedule.Segment{}, fmt.Errorf("segment %s: bad start_time %q: %w", w.ID, w.StartTime, err)
	}
	end, err := time.Parse(time.RFC3339, w.EndTime)
	if err != nil {
		return schedule.Segment{}, fmt.Errorf("segment %s: bad end_time %q: %w", w.ID, w.EndTime, err)
	}

	return schedule.Segment{
		ID:            w.ID,
		AppointmentID: appointmentID,
		Type:          schedule.SegmentType(w.SegmentType),
		Label:         w.Label,
		Start:         start,
		End:           end,
		SortOrder:     w.SortOrder,
		ProductGrams:  w.ProductGrams,
		Notes:         deref(w.Notes),
	}, nil
}

func ToDomainTemplate(w Template) schedule.SplitTemplate {
	tpl := schedule.SplitTemplate{
		ID:          w.ID,
		Name:        w.Name,
		Category:    schedule.ServiceCategory(w.Category),
		Description: deref(w.Description),
	}
	for _, ws := range w.Steps {
		tpl.Steps = append(tpl.Steps, schedule.TemplateStep{
			ID:              ws.ID,
			Type:            schedule.SegmentType(ws.StepType),
			Label:           ws.Label,
			DurationMinutes: ws.DurationMinutes,
			SortOrder:       ws.SortOrder,
			IsGap:           ws.IsGap,
		})
	}
	return tpl
}

func ToDomainEmployee(w Employee) schedule.Employee {
	return schedule.Employee{
		ID:        w.ID,
		Name:      w.Name,
		AvatarURL: w.AvatarURL,
		Role:      w.Role,
		Color:     w.Color,
	}
}

// ===============================
// Domain -> wire
// ===============================

// ToWireAppointment serializes a domain appointment. A simple appointment
// (no segments) is wrapped in one synthetic "service" segment spanning its
// start/end, so the wire format always carries at least one segment and
// segment-derived times stay a safe invariant on the read path.
func ToWireAppointment(a schedule.Appointment) Appointment {
	w := Appointment{
		ID:              a.ID,
		EmployeeID:      a.EmployeeID,
		ClientName:      a.ClientName,
		ServiceName:     a.ServiceName,
		ServiceCategory: string(a.Category),
		Status:          string(a.Status),
		Notes:           ref(a.Notes),
		SalonID:         a.SalonID,
		CustomerID:      a.CustomerID,
	}

	if len(a.Segments) == 0 {
		w.Segments = []Segment{{
			ID:          a.ID + "-svc",
			SegmentType: string(schedule.SegmentService),
			Label:       a.ServiceName,
			StartTime:   a.Start.Format(time.RFC3339),
			EndTime:     a.End.Format(time.RFC3339),
			SortOrder:   0,
		}}
		return w
	}

	for _, s := range a.Segments {
		w.Segments = append(w.Segments, ToWireSegment(s))
	}
	return w
}

// ToWireSegment serializes one segment. Optional fields marshal as explicit
// nulls so partial updates stay unambiguous.
func ToWireSegment(s schedule.Segment) Segment {
	return Segment{
		ID:           s.ID,
		SegmentType:  string(s.Type),
		Label:        s.Label,
		StartTime:    s.Start.Format(time.RFC3339),
		EndTime:      s.End.Format(time.RFC3339),
		SortOrder:    s.SortOrder,
		ProductGrams: s.ProductGrams,
		Notes:        ref(s.Notes),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
