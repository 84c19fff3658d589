// Package appointment holds the server-side appointment use cases. Domain
// rules (validation, overlap, template expansion) live in internal/schedule
// and are shared with the client engine; this layer wires them to persistence
// and auditing.
package appointment

import (
	"fmt"

	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/schedule"
)

// ValidationError carries the full field-tagged error list back to the
// handler edge.
type ValidationError struct {
	Errors []schedule.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%d errors)", len(e.Errors))
}

func toDomainSegments(segs []models.AppointmentSegment) []schedule.Segment {
	out := make([]schedule.Segment, 0, len(segs))
	for _, s := range segs {
		out = append(out, schedule.Segment{
			ID:            s.ID,
			AppointmentID: s.AppointmentID,
			Type:          schedule.SegmentType(s.SegmentType),
			Label:         s.Label,
			Start:         s.StartTime,
			End:           s.EndTime,
			SortOrder:     s.SortOrder,
			ProductGrams:  s.ProductGrams,
			Notes:         s.Notes,
		})
	}
	return out
}

func toDomainTemplate(t models.SplitTemplate) schedule.SplitTemplate {
	tpl := schedule.SplitTemplate{
		ID:          t.ID,
		Name:        t.Name,
		Category:    schedule.ServiceCategory(t.Category),
		Description: t.Description,
	}
	for _, st := range t.Steps {
		tpl.Steps = append(tpl.Steps, schedule.TemplateStep{
			ID:              st.ID,
			Type:            schedule.SegmentType(st.StepType),
			Label:           st.Label,
			DurationMinutes: st.DurationMinutes,
			SortOrder:       st.SortOrder,
			IsGap:           st.IsGap,
		})
	}
	return tpl
}

func toModelSegments(segs []schedule.Segment) []models.AppointmentSegment {
	out := make([]models.AppointmentSegment, 0, len(segs))
	for _, s := range segs {
		out = append(out, models.AppointmentSegment{
			ID:            s.ID,
			AppointmentID: s.AppointmentID,
			SegmentType:   string(s.Type),
			Label:         s.Label,
			StartTime:     s.Start,
			EndTime:       s.End,
			SortOrder:     s.SortOrder,
			ProductGrams:  s.ProductGrams,
			Notes:         s.Notes,
		})
	}
	return out
}
