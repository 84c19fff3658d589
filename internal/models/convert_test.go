package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentToWireSimple(t *testing.T) {
	ap := Appointment{
		ID:          "ap-1",
		SalonID:     "salon-1",
		EmployeeID:  "emp-1",
		ClientName:  "Ana Souza",
		ServiceName: "Corte",
		Status:      "confirmed",
		StartTime:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}

	w := ap.ToWire()

	require.Len(t, w.Segments, 1, "a simple appointment still carries one segment over the wire")
	assert.Equal(t, "ap-1-svc", w.Segments[0].ID)
	assert.Equal(t, "service", w.Segments[0].SegmentType)
	assert.Equal(t, "2026-03-02T11:00:00Z", w.Segments[0].StartTime)
	assert.Nil(t, w.Notes)
}

func TestAppointmentToWireSortsSegments(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	ap := Appointment{
		ID: "ap-1",
		Segments: []AppointmentSegment{
			{ID: "seg-b", SegmentType: "wash", SortOrder: 1, StartTime: start.Add(20 * time.Minute), EndTime: start.Add(40 * time.Minute)},
			{ID: "seg-a", SegmentType: "apply", SortOrder: 0, StartTime: start, EndTime: start.Add(20 * time.Minute)},
		},
	}

	w := ap.ToWire()

	require.Len(t, w.Segments, 2)
	assert.Equal(t, "seg-a", w.Segments[0].ID)
	assert.Equal(t, "seg-b", w.Segments[1].ID)
}

func TestTemplateToWire(t *testing.T) {
	tpl := SplitTemplate{
		ID:          "tpl-1",
		Name:        "Coloração",
		Category:    "color",
		Description: "com pausa",
		Steps: []SplitTemplateStep{
			{ID: "st-2", StepType: "wait", SortOrder: 1, DurationMinutes: 30, IsGap: true},
			{ID: "st-1", StepType: "apply", SortOrder: 0, DurationMinutes: 20},
		},
	}

	w := tpl.ToWire()

	require.NotNil(t, w.Description)
	assert.Equal(t, "com pausa", *w.Description)
	require.Len(t, w.Steps, 2)
	assert.Equal(t, "st-1", w.Steps[0].ID)
	assert.True(t, w.Steps[1].IsGap)
}

func TestAppointmentSyncFromSegments(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	ap := Appointment{
		StartTime: start.Add(5 * time.Hour),
		EndTime:   start.Add(6 * time.Hour),
		Segments: []AppointmentSegment{
			{StartTime: start.Add(30 * time.Minute), EndTime: start.Add(time.Hour)},
			{StartTime: start, EndTime: start.Add(30 * time.Minute)},
		},
	}

	ap.SyncFromSegments()

	assert.Equal(t, start, ap.StartTime)
	assert.Equal(t, start.Add(time.Hour), ap.EndTime)
}
