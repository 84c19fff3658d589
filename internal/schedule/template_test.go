package schedule

import (
	"testing"
	"time"
)

func colorTemplate() SplitTemplate {
	return SplitTemplate{
		ID:       "tpl-color",
		Name:     "Coloração completa",
		Category: CategoryColor,
		Steps: []TemplateStep{
			{Type: SegmentApply, Label: "Aplicação", DurationMinutes: 20, SortOrder: 0},
			{Type: SegmentWait, Label: "Pausa", DurationMinutes: 30, SortOrder: 1, IsGap: true},
			{Type: SegmentWash, Label: "Lavagem", DurationMinutes: 15, SortOrder: 2},
		},
	}
}

func TestBuildSegmentsChain(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	segs := BuildSegments(colorTemplate(), "ap-1", start)

	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}

	wantTimes := []struct {
		start, end time.Time
		typ        SegmentType
	}{
		{start, start.Add(20 * time.Minute), SegmentApply},
		{start.Add(20 * time.Minute), start.Add(50 * time.Minute), SegmentWait},
		{start.Add(50 * time.Minute), start.Add(65 * time.Minute), SegmentWash},
	}
	for i, w := range wantTimes {
		if !segs[i].Start.Equal(w.start) || !segs[i].End.Equal(w.end) {
			t.Errorf("segment %d span = [%v, %v), want [%v, %v)",
				i, segs[i].Start, segs[i].End, w.start, w.end)
		}
		if segs[i].Type != w.typ {
			t.Errorf("segment %d type = %s, want %s", i, segs[i].Type, w.typ)
		}
		if segs[i].SortOrder != i {
			t.Errorf("segment %d sort order = %d", i, segs[i].SortOrder)
		}
		if segs[i].AppointmentID != "ap-1" {
			t.Errorf("segment %d appointment id = %q", i, segs[i].AppointmentID)
		}
		if segs[i].ID == "" {
			t.Errorf("segment %d missing id", i)
		}
	}
}

func TestBuildSegmentsSortsSteps(t *testing.T) {
	tpl := colorTemplate()
	tpl.Steps[0], tpl.Steps[2] = tpl.Steps[2], tpl.Steps[0]

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	segs := BuildSegments(tpl, "ap-1", start)

	if segs[0].Type != SegmentApply || segs[2].Type != SegmentWash {
		t.Fatalf("expected steps walked in sort order, got %s ... %s", segs[0].Type, segs[2].Type)
	}
}

func TestBuildSegmentsContiguous(t *testing.T) {
	tpl := SplitTemplate{ID: "tpl-n", Name: "N steps"}
	for i := 0; i < 7; i++ {
		tpl.Steps = append(tpl.Steps, TemplateStep{
			Type:            SegmentService,
			DurationMinutes: 5 + i*5,
			SortOrder:       i,
		})
	}

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	segs := BuildSegments(tpl, "ap-1", start)

	if len(segs) != len(tpl.Steps) {
		t.Fatalf("expected %d segments, got %d", len(tpl.Steps), len(segs))
	}
	for i := 1; i < len(segs); i++ {
		if !segs[i].Start.Equal(segs[i-1].End) {
			t.Fatalf("segment %d starts at %v, previous ends at %v", i, segs[i].Start, segs[i-1].End)
		}
	}
}

func TestSyncFromSegments(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := Appointment{
		ID:    "ap-1",
		Start: start.Add(5 * time.Hour),
		End:   start.Add(6 * time.Hour),
		Segments: []Segment{
			{SortOrder: 1, Start: start.Add(20 * time.Minute), End: start.Add(50 * time.Minute)},
			{SortOrder: 0, Start: start, End: start.Add(20 * time.Minute)},
			{SortOrder: 2, Start: start.Add(50 * time.Minute), End: start.Add(65 * time.Minute)},
		},
	}

	a.SyncFromSegments()

	if !a.Start.Equal(start) {
		t.Errorf("start = %v, want %v", a.Start, start)
	}
	if want := start.Add(65 * time.Minute); !a.End.Equal(want) {
		t.Errorf("end = %v, want %v", a.End, want)
	}
	if a.Segments[0].SortOrder != 0 || a.Segments[2].SortOrder != 2 {
		t.Error("segments not sorted in place")
	}
}

func TestSyncFromSegmentsNoSegments(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := Appointment{Start: start, End: start.Add(time.Hour)}

	a.SyncFromSegments()

	if !a.Start.Equal(start) || !a.End.Equal(start.Add(time.Hour)) {
		t.Error("simple appointment window must stay untouched")
	}
}
