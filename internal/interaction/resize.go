package interaction

import (
	"errors"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/schedule"
	"github.com/glowdesk/salon-scheduler/internal/timegrid"
)

// Edge names which boundary of the card is being dragged.
type Edge int

const (
	EdgeStart Edge = iota // top edge moves the start
	EdgeEnd               // bottom edge moves the end
)

var (
	ErrResizeActive = errors.New("a resize gesture is already in progress")
	ErrResizeIdle   = errors.New("no resize gesture in progress")
)

type sessionState int

const (
	stateIdle sessionState = iota
	stateResizing
)

// ResizeSession is an explicit Idle -> Resizing -> Idle machine replacing the
// original's module-global pointer listeners. Every exit path (commit or
// cancel) lands back in Idle, so a gesture can never leak into the next one.
// Resize never changes the appointment's employee.
type ResizeSession struct {
	state sessionState

	appointmentID string
	edge          Edge
	anchorY       float64
	day           time.Time
	origStartMin  int
	origEndMin    int
	snapMinutes   int

	liveStartMin int
	liveEndMin   int
}

func NewResizeSession() *ResizeSession {
	return &ResizeSession{}
}

func (s *ResizeSession) Active() bool {
	return s.state == stateResizing
}

func (s *ResizeSession) AppointmentID() string {
	return s.appointmentID
}

// Begin enters Resizing for the given appointment edge, anchored at the
// pointer-down position.
func (s *ResizeSession) Begin(ap schedule.Appointment, edge Edge, pointerY float64, snapMinutes int) error {
	if s.state != stateIdle {
		return ErrResizeActive
	}
	if snapMinutes <= 0 {
		snapMinutes = timegrid.DefaultSnapMinutes
	}

	s.state = stateResizing
	s.appointmentID = ap.ID
	s.edge = edge
	s.anchorY = pointerY
	s.day = timegrid.StartOfDay(ap.Start)
	s.origStartMin = timegrid.MinutesOfDay(ap.Start)
	s.origEndMin = timegrid.MinutesOfDay(ap.End)
	s.snapMinutes = snapMinutes
	s.liveStartMin = s.origStartMin
	s.liveEndMin = s.origEndMin
	return nil
}

// Move recomputes the live interval for pointer position y. The snapped
// minute delta applies only to the dragged edge; the pair is clamped on every
// move so visual feedback always shows a committable interval.
func (s *ResizeSession) Move(y float64) (time.Time, time.Time, error) {
	if s.state != stateResizing {
		return time.Time{}, time.Time{}, ErrResizeIdle
	}

	deltaMin := timegrid.Snap((y-s.anchorY)/timegrid.SlotHeight*60, s.snapMinutes)

	startMin := s.origStartMin
	endMin := s.origEndMin
	if s.edge == EdgeStart {
		startMin += deltaMin
	} else {
		endMin += deltaMin
	}

	s.liveStartMin, s.liveEndMin = timegrid.ClampToWindow(startMin, endMin, timegrid.MinDurationMinutes)
	return s.liveTimes()
}

// Commit ends the gesture and returns the final clamped interval.
func (s *ResizeSession) Commit() (time.Time, time.Time, error) {
	if s.state != stateResizing {
		return time.Time{}, time.Time{}, ErrResizeIdle
	}
	start, end, _ := s.liveTimes()
	s.reset()
	return start, end, nil
}

// Cancel abandons the gesture. Safe to call from any state, so interruption
// handlers can always force the machine back to Idle.
func (s *ResizeSession) Cancel() {
	s.reset()
}

func (s *ResizeSession) liveTimes() (time.Time, time.Time, error) {
	return timegrid.AtMinutes(s.day, s.liveStartMin), timegrid.AtMinutes(s.day, s.liveEndMin), nil
}

func (s *ResizeSession) reset() {
	*s = ResizeSession{}
}
