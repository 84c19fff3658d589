package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// BuildSegments expands a template into concrete segments anchored at start.
// Steps are walked in sort order with a running cursor, so the chain is
// contiguous and non-overlapping by construction; gap steps still occupy their
// duration, they are just typed as non-productive time.
func BuildSegments(tpl SplitTemplate, appointmentID string, start time.Time) []Segment {
	steps := make([]TemplateStep, len(tpl.Steps))
	copy(steps, tpl.Steps)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].SortOrder < steps[j].SortOrder
	})

	segs := make([]Segment, 0, len(steps))
	cursor := start
	for i, st := range steps {
		end := cursor.Add(time.Duration(st.DurationMinutes) * time.Minute)
		segs = append(segs, Segment{
			ID:            uuid.NewString(),
			AppointmentID: appointmentID,
			Type:          st.Type,
			Label:         st.Label,
			Start:         cursor,
			End:           end,
			SortOrder:     i,
		})
		cursor = end
	}
	return segs
}
