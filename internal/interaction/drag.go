// Package interaction turns pointer gestures into snapped, clamped time
// mutations. It is pure arithmetic over the time grid; committing the result
// is the caller's job, as is deciding what to do about conflicts.
package interaction

import (
	"time"

	"github.com/glowdesk/salon-scheduler/internal/schedule"
	"github.com/glowdesk/salon-scheduler/internal/timegrid"
)

// DragInput describes a drop: the dragged appointment, the grid offset of the
// card inside the target column, and the target (day, employee).
type DragInput struct {
	Appointment schedule.Appointment

	// GridOffset is the card's top edge relative to the column top, in grid
	// units.
	GridOffset float64

	TargetDay        time.Time
	TargetEmployeeID string

	// SnapMinutes defaults to the 15-minute grid.
	SnapMinutes int
}

// DragResult is the planned mutation: new owner and the clamped, date-anchored
// interval. Duration is preserved from the original appointment.
type DragResult struct {
	EmployeeID string
	Start      time.Time
	End        time.Time
}

// PlanDrag converts a drop position into a snapped start time, carries the
// original duration over, and clamps the pair to the working window.
func PlanDrag(in DragInput) DragResult {
	rawStart := timegrid.HourStart*60 + in.GridOffset/timegrid.SlotHeight*60

	startMin := timegrid.Snap(rawStart, in.SnapMinutes)
	durMin := int(in.Appointment.End.Sub(in.Appointment.Start).Minutes())
	startMin, endMin := timegrid.ClampToWindow(startMin, startMin+durMin, timegrid.MinDurationMinutes)

	return DragResult{
		EmployeeID: in.TargetEmployeeID,
		Start:      timegrid.AtMinutes(in.TargetDay, startMin),
		End:        timegrid.AtMinutes(in.TargetDay, endMin),
	}
}
