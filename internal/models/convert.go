package models

import (
	"sort"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/wire"
)

// ===============================
// Persisted -> wire
// ===============================

func (a Appointment) ToWire() wire.Appointment {
	w := wire.Appointment{
		ID:              a.ID,
		EmployeeID:      a.EmployeeID,
		ClientName:      a.ClientName,
		ServiceName:     a.ServiceName,
		ServiceCategory: a.ServiceCategory,
		Status:          a.Status,
		SalonID:         a.SalonID,
		CustomerID:      a.CustomerID,
	}
	if a.Notes != "" {
		notes := a.Notes
		w.Notes = &notes
	}

	// Time lives only on segments over the wire; a simple appointment is
	// wrapped in one synthetic service segment spanning its window.
	if len(a.Segments) == 0 {
		w.Segments = []wire.Segment{{
			ID:          a.ID + "-svc",
			SegmentType: "service",
			Label:       a.ServiceName,
			StartTime:   a.StartTime.Format(time.RFC3339),
			EndTime:     a.EndTime.Format(time.RFC3339),
			SortOrder:   0,
		}}
		return w
	}

	segs := make([]AppointmentSegment, len(a.Segments))
	copy(segs, a.Segments)
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].SortOrder < segs[j].SortOrder })
	for _, s := range segs {
		w.Segments = append(w.Segments, s.ToWire())
	}
	return w
}

func (s AppointmentSegment) ToWire() wire.Segment {
	ws := wire.Segment{
		ID:           s.ID,
		SegmentType:  s.SegmentType,
		Label:        s.Label,
		StartTime:    s.StartTime.Format(time.RFC3339),
		EndTime:      s.EndTime.Format(time.RFC3339),
		SortOrder:    s.SortOrder,
		ProductGrams: s.ProductGrams,
	}
	if s.Notes != "" {
		notes := s.Notes
		ws.Notes = &notes
	}
	return ws
}

func (t SplitTemplate) ToWire() wire.Template {
	w := wire.Template{
		ID:       t.ID,
		Name:     t.Name,
		Category: t.Category,
	}
	if t.Description != "" {
		desc := t.Description
		w.Description = &desc
	}

	steps := make([]SplitTemplateStep, len(t.Steps))
	copy(steps, t.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].SortOrder < steps[j].SortOrder })
	for _, st := range steps {
		w.Steps = append(w.Steps, wire.TemplateStep{
			ID:              st.ID,
			StepType:        st.StepType,
			Label:           st.Label,
			DurationMinutes: st.DurationMinutes,
			SortOrder:       st.SortOrder,
			IsGap:           st.IsGap,
		})
	}
	return w
}
