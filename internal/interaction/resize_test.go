package interaction

import (
	"errors"
	"testing"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/schedule"
)

func resizeAppointment(startH, startM, endH, endM int) schedule.Appointment {
	return schedule.Appointment{
		ID:    "ap-1",
		Start: time.Date(2026, 3, 2, startH, startM, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 2, endH, endM, 0, 0, time.UTC),
	}
}

func TestResizeBottomEdgeSnapsToMinimum(t *testing.T) {
	s := NewResizeSession()
	ap := resizeAppointment(9, 0, 9, 10)

	if err := s.Begin(ap, EdgeEnd, 100, 15); err != nil {
		t.Fatal(err)
	}

	// +3 minutes of pointer travel snaps to a zero delta on the 15-minute
	// grid; the minimum-duration clamp then grows the end to 09:15.
	start, end, err := s.Move(103)
	if err != nil {
		t.Fatal(err)
	}
	if !start.Equal(ap.Start) {
		t.Errorf("start moved to %v during a bottom-edge resize", start)
	}
	if want := time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}

	cStart, cEnd, err := s.Commit()
	if err != nil {
		t.Fatal(err)
	}
	if !cStart.Equal(start) || !cEnd.Equal(end) {
		t.Error("commit must return the last live interval")
	}
	if s.Active() {
		t.Error("session must return to idle after commit")
	}
}

func TestResizeTopEdge(t *testing.T) {
	s := NewResizeSession()
	ap := resizeAppointment(10, 0, 11, 0)

	if err := s.Begin(ap, EdgeStart, 200, 15); err != nil {
		t.Fatal(err)
	}

	// -30 grid units = -30 minutes: start moves to 09:30, end stays.
	start, end, err := s.Move(170)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	if !end.Equal(ap.End) {
		t.Errorf("end moved to %v during a top-edge resize", end)
	}
}

func TestResizeDeltaIsFromAnchorNotCumulative(t *testing.T) {
	s := NewResizeSession()
	ap := resizeAppointment(9, 0, 10, 0)

	if err := s.Begin(ap, EdgeEnd, 0, 15); err != nil {
		t.Fatal(err)
	}

	s.Move(30)
	_, end, err := s.Move(15) // net +15 from anchor, not +45
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}
}

func TestResizeClampsEveryMove(t *testing.T) {
	s := NewResizeSession()
	ap := resizeAppointment(20, 0, 20, 30)

	if err := s.Begin(ap, EdgeEnd, 0, 15); err != nil {
		t.Fatal(err)
	}

	_, end, err := s.Move(120) // would push the end to 22:30
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2026, 3, 2, 21, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want clamped to %v", end, want)
	}
}

func TestResizeStateMachine(t *testing.T) {
	s := NewResizeSession()
	ap := resizeAppointment(9, 0, 10, 0)

	if _, _, err := s.Move(10); !errors.Is(err, ErrResizeIdle) {
		t.Errorf("Move while idle = %v, want ErrResizeIdle", err)
	}
	if _, _, err := s.Commit(); !errors.Is(err, ErrResizeIdle) {
		t.Errorf("Commit while idle = %v, want ErrResizeIdle", err)
	}

	if err := s.Begin(ap, EdgeEnd, 0, 15); err != nil {
		t.Fatal(err)
	}
	if !s.Active() || s.AppointmentID() != "ap-1" {
		t.Error("session must be active on ap-1")
	}

	if err := s.Begin(ap, EdgeEnd, 0, 15); !errors.Is(err, ErrResizeActive) {
		t.Errorf("nested Begin = %v, want ErrResizeActive", err)
	}

	s.Cancel()
	if s.Active() {
		t.Error("cancel must land back in idle")
	}

	// Cancel from idle stays a no-op.
	s.Cancel()

	if err := s.Begin(ap, EdgeStart, 0, 15); err != nil {
		t.Errorf("Begin after cancel = %v", err)
	}
}
