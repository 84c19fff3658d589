package schedule

import (
	"sort"
	"time"
)

// ===============================
// Domain model
// ===============================

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

type ServiceCategory string

const (
	CategoryColor         ServiceCategory = "color"
	CategoryHighlights    ServiceCategory = "highlights"
	CategoryToner         ServiceCategory = "toner"
	CategoryStraightening ServiceCategory = "straightening"
	CategoryCut           ServiceCategory = "cut"
	CategoryTreatment     ServiceCategory = "treatment"
	CategoryOther         ServiceCategory = "other"
)

type SegmentType string

const (
	SegmentService  SegmentType = "service"
	SegmentApply    SegmentType = "apply"
	SegmentWait     SegmentType = "wait"
	SegmentWash     SegmentType = "wash"
	SegmentDry      SegmentType = "dry"
	SegmentCheckin  SegmentType = "checkin"
	SegmentCheckout SegmentType = "checkout"
)

// Employee is read-only reference data owned by the staff directory.
type Employee struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"`
	Color     string `json:"color"`
}

// Segment is one timed sub-step of a composite appointment. A segment never
// outlives its parent appointment.
type Segment struct {
	ID            string
	AppointmentID string
	Type          SegmentType
	Label         string
	Start         time.Time
	End           time.Time
	SortOrder     int
	ProductGrams  *float64
	Notes         string
}

type Appointment struct {
	ID         string
	EmployeeID string

	ClientName  string
	ServiceName string
	Category    ServiceCategory

	Start time.Time
	End   time.Time

	Status Status
	Notes  string

	Segments []Segment

	// GroupID mirrors ID; present for card grouping in the calendar UI.
	GroupID string

	SalonID    string
	CustomerID string
}

// SplitTemplate is a reusable blueprint of step durations. Applying it never
// mutates the template.
type SplitTemplate struct {
	ID          string
	Name        string
	Category    ServiceCategory
	Description string
	Steps       []TemplateStep
}

type TemplateStep struct {
	ID              string
	Type            SegmentType
	Label           string
	DurationMinutes int
	SortOrder       int
	IsGap           bool
}

// SortSegments orders the slice by SortOrder in place.
func SortSegments(segs []Segment) {
	sort.SliceStable(segs, func(i, j int) bool {
		return segs[i].SortOrder < segs[j].SortOrder
	})
}

// SyncFromSegments re-derives Start/End from the segment list: the earliest
// segment start and the latest segment end. No-op for simple appointments.
func (a *Appointment) SyncFromSegments() {
	if len(a.Segments) == 0 {
		return
	}
	SortSegments(a.Segments)
	start := a.Segments[0].Start
	end := a.Segments[0].End
	for _, s := range a.Segments[1:] {
		if s.Start.Before(start) {
			start = s.Start
		}
		if s.End.After(end) {
			end = s.End
		}
	}
	a.Start = start
	a.End = end
}

// Duration returns the appointment span.
func (a *Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}
