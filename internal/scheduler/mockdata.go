package scheduler

import (
	"time"

	"github.com/glowdesk/salon-scheduler/internal/schedule"
	"github.com/glowdesk/salon-scheduler/internal/timegrid"
)

// Built-in dataset shown when the backend is unreachable or empty. Times are
// anchored to the given day so the calendar always opens on a populated view.

func MockEmployees() []schedule.Employee {
	return []schedule.Employee{
		{ID: "emp-1", Name: "Marina Costa", Role: "Colorist", Color: "#7c5cbf", AvatarURL: "/avatars/marina.webp"},
		{ID: "emp-2", Name: "Julia Prado", Role: "Stylist", Color: "#2e8b8b", AvatarURL: "/avatars/julia.webp"},
		{ID: "emp-3", Name: "Renata Lima", Role: "Stylist", Color: "#bf5c7c", AvatarURL: "/avatars/renata.webp"},
	}
}

func MockAppointments(now time.Time) []schedule.Appointment {
	day := timegrid.StartOfDay(now)
	at := func(h, m int) time.Time { return timegrid.AtMinutes(day, h*60+m) }

	grams := 45.0

	color := schedule.Appointment{
		ID:          "mock-1",
		GroupID:     "mock-1",
		EmployeeID:  "emp-1",
		ClientName:  "Ana Souza",
		ServiceName: "Full color",
		Category:    schedule.CategoryColor,
		Status:      schedule.StatusConfirmed,
		Segments: []schedule.Segment{
			{ID: "mock-1-a", AppointmentID: "mock-1", Type: schedule.SegmentApply, Label: "Apply color", Start: at(9, 0), End: at(9, 30), SortOrder: 0, ProductGrams: &grams},
			{ID: "mock-1-b", AppointmentID: "mock-1", Type: schedule.SegmentWait, Label: "Processing", Start: at(9, 30), End: at(10, 10), SortOrder: 1},
			{ID: "mock-1-c", AppointmentID: "mock-1", Type: schedule.SegmentWash, Label: "Rinse & wash", Start: at(10, 10), End: at(10, 30), SortOrder: 2},
		},
	}
	color.SyncFromSegments()

	cut := schedule.Appointment{
		ID:          "mock-2",
		GroupID:     "mock-2",
		EmployeeID:  "emp-2",
		ClientName:  "Beatriz Nunes",
		ServiceName: "Cut & finish",
		Category:    schedule.CategoryCut,
		Status:      schedule.StatusConfirmed,
		Start:       at(11, 0),
		End:         at(12, 0),
	}

	treatment := schedule.Appointment{
		ID:          "mock-3",
		GroupID:     "mock-3",
		EmployeeID:  "emp-3",
		ClientName:  "Carla Mendes",
		ServiceName: "Keratin treatment",
		Category:    schedule.CategoryTreatment,
		Status:      schedule.StatusInProgress,
		Start:       at(14, 0),
		End:         at(15, 30),
		Notes:       "Sensitive scalp",
	}

	return []schedule.Appointment{color, cut, treatment}
}

func MockTemplates() []schedule.SplitTemplate {
	return []schedule.SplitTemplate{
		{
			ID:       "tpl-color",
			Name:     "Color + processing",
			Category: schedule.CategoryColor,
			Steps: []schedule.TemplateStep{
				{ID: "tpl-color-1", Type: schedule.SegmentApply, Label: "Apply color", DurationMinutes: 20, SortOrder: 0},
				{ID: "tpl-color-2", Type: schedule.SegmentWait, Label: "Processing", DurationMinutes: 30, SortOrder: 1, IsGap: true},
				{ID: "tpl-color-3", Type: schedule.SegmentWash, Label: "Rinse & wash", DurationMinutes: 15, SortOrder: 2},
			},
		},
		{
			ID:       "tpl-highlights",
			Name:     "Highlights",
			Category: schedule.CategoryHighlights,
			Steps: []schedule.TemplateStep{
				{ID: "tpl-hl-1", Type: schedule.SegmentApply, Label: "Foils", DurationMinutes: 45, SortOrder: 0},
				{ID: "tpl-hl-2", Type: schedule.SegmentWait, Label: "Processing", DurationMinutes: 35, SortOrder: 1, IsGap: true},
				{ID: "tpl-hl-3", Type: schedule.SegmentWash, Label: "Wash + toner", DurationMinutes: 25, SortOrder: 2},
				{ID: "tpl-hl-4", Type: schedule.SegmentDry, Label: "Blow dry", DurationMinutes: 20, SortOrder: 3},
			},
		},
		{
			ID:       "tpl-straight",
			Name:     "Straightening",
			Category: schedule.CategoryStraightening,
			Steps: []schedule.TemplateStep{
				{ID: "tpl-st-1", Type: schedule.SegmentWash, Label: "Clarifying wash", DurationMinutes: 15, SortOrder: 0},
				{ID: "tpl-st-2", Type: schedule.SegmentApply, Label: "Apply product", DurationMinutes: 40, SortOrder: 1},
				{ID: "tpl-st-3", Type: schedule.SegmentWait, Label: "Set", DurationMinutes: 20, SortOrder: 2, IsGap: true},
				{ID: "tpl-st-4", Type: schedule.SegmentDry, Label: "Seal & dry", DurationMinutes: 45, SortOrder: 3},
			},
		},
	}
}
