package interaction

import (
	"testing"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/schedule"
)

var dragDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func dragAt(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
}

func TestPlanDragSnapsAndPreservesDuration(t *testing.T) {
	ap := schedule.Appointment{
		ID:         "ap-1",
		EmployeeID: "emp-1",
		Start:      dragAt(9, 0),
		End:        dragAt(10, 30),
	}

	// Offset 127.6 grid units -> raw start 10:07.6, which snaps up to 10:15.
	got := PlanDrag(DragInput{
		Appointment:      ap,
		GridOffset:       127.6,
		TargetDay:        dragDay,
		TargetEmployeeID: "emp-2",
		SnapMinutes:      15,
	})

	if !got.Start.Equal(dragAt(10, 15)) {
		t.Errorf("start = %v, want 10:15", got.Start)
	}
	if !got.End.Equal(dragAt(11, 45)) {
		t.Errorf("end = %v, want 11:45 (90 minute duration preserved)", got.End)
	}
	if got.EmployeeID != "emp-2" {
		t.Errorf("employee = %q, want emp-2", got.EmployeeID)
	}
}

func TestPlanDragSnapsDown(t *testing.T) {
	ap := schedule.Appointment{Start: dragAt(9, 0), End: dragAt(10, 0)}

	// Raw start 10:07 is nearer to 10:00 than 10:15.
	got := PlanDrag(DragInput{
		Appointment:      ap,
		GridOffset:       127,
		TargetDay:        dragDay,
		TargetEmployeeID: "emp-1",
		SnapMinutes:      15,
	})

	if !got.Start.Equal(dragAt(10, 0)) || !got.End.Equal(dragAt(11, 0)) {
		t.Errorf("got [%v, %v), want [10:00, 11:00)", got.Start, got.End)
	}
}

func TestPlanDragClampsToWindow(t *testing.T) {
	ap := schedule.Appointment{Start: dragAt(9, 0), End: dragAt(11, 0)}

	t.Run("dropped above the window", func(t *testing.T) {
		got := PlanDrag(DragInput{
			Appointment:      ap,
			GridOffset:       -200,
			TargetDay:        dragDay,
			TargetEmployeeID: "emp-1",
		})
		if !got.Start.Equal(dragAt(8, 0)) {
			t.Errorf("start = %v, want window start 08:00", got.Start)
		}
	})

	t.Run("dropped past the window end", func(t *testing.T) {
		got := PlanDrag(DragInput{
			Appointment:      ap,
			GridOffset:       (20.5 - 8) * 60, // raw 20:30
			TargetDay:        dragDay,
			TargetEmployeeID: "emp-1",
		})
		if !got.End.Equal(dragAt(21, 0)) {
			t.Errorf("end = %v, want clamped to 21:00", got.End)
		}
	})
}

func TestPlanDragTargetsAnotherDay(t *testing.T) {
	ap := schedule.Appointment{Start: dragAt(9, 0), End: dragAt(10, 0)}
	otherDay := dragDay.AddDate(0, 0, 2)

	got := PlanDrag(DragInput{
		Appointment:      ap,
		GridOffset:       60, // raw 09:00
		TargetDay:        otherDay,
		TargetEmployeeID: "emp-1",
	})

	want := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	if !got.Start.Equal(want) {
		t.Errorf("start = %v, want %v", got.Start, want)
	}
}
