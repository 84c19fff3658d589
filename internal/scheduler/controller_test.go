package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/salon-scheduler/internal/schedule"
	"github.com/glowdesk/salon-scheduler/internal/wire"
)

// ===============================
// Fake client
// ===============================

type fakeClient struct {
	mu sync.Mutex

	appointments []wire.Appointment
	templates    []wire.Template
	employees    []wire.Employee

	fetchDelay time.Duration
	fetchErr   error

	createID  string
	createErr error
	syncErr   error

	fetchCalls  int
	createCalls int
	updateCalls int
	deleteCalls int
	splitCalls  int
	applyCalls  int
}

func (f *fakeClient) wait(ctx context.Context) error {
	if f.fetchDelay == 0 {
		return nil
	}
	select {
	case <-time.After(f.fetchDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeClient) GetAppointments(ctx context.Context) ([]wire.Appointment, error) {
	f.mu.Lock()
	f.fetchCalls++
	f.mu.Unlock()
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.appointments, nil
}

func (f *fakeClient) GetTemplates(ctx context.Context) ([]wire.Template, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.templates, nil
}

func (f *fakeClient) GetEmployees(ctx context.Context) ([]wire.Employee, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.employees, nil
}

func (f *fakeClient) CreateAppointment(ctx context.Context, ap wire.Appointment) (wire.Appointment, error) {
	f.mu.Lock()
	f.createCalls++
	f.mu.Unlock()
	if f.createErr != nil {
		return wire.Appointment{}, f.createErr
	}
	if f.createID != "" {
		ap.ID = f.createID
	}
	return ap, nil
}

func (f *fakeClient) UpdateAppointment(ctx context.Context, id string, ap wire.Appointment) error {
	f.mu.Lock()
	f.updateCalls++
	f.mu.Unlock()
	return f.syncErr
}

func (f *fakeClient) DeleteAppointment(ctx context.Context, id string) error {
	f.mu.Lock()
	f.deleteCalls++
	f.mu.Unlock()
	return f.syncErr
}

func (f *fakeClient) SplitAppointment(ctx context.Context, id string, segments []wire.Segment) error {
	f.mu.Lock()
	f.splitCalls++
	f.mu.Unlock()
	return f.syncErr
}

func (f *fakeClient) ApplyTemplate(ctx context.Context, appointmentID, templateID string, startTime time.Time) error {
	f.mu.Lock()
	f.applyCalls++
	f.mu.Unlock()
	return f.syncErr
}

// ===============================
// Helpers
// ===============================

var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func testClock() time.Time { return testDay.Add(7 * time.Hour) }

func liveAppointment(id string) wire.Appointment {
	return wire.Appointment{
		ID:          id,
		EmployeeID:  "emp-1",
		ClientName:  "Ana Souza",
		ServiceName: "Corte",
		Status:      "confirmed",
		Segments: []wire.Segment{{
			ID:          id + "-svc",
			SegmentType: "service",
			StartTime:   "2026-03-02T13:00:00Z",
			EndTime:     "2026-03-02T14:00:00Z",
		}},
	}
}

func newAppointment(employeeID string, startHour, endHour int) schedule.Appointment {
	return schedule.Appointment{
		EmployeeID:  employeeID,
		ClientName:  "Nova Cliente",
		ServiceName: "Corte",
		Status:      schedule.StatusConfirmed,
		Start:       testDay.Add(time.Duration(startHour) * time.Hour),
		End:         testDay.Add(time.Duration(endHour) * time.Hour),
	}
}

// ===============================
// Load
// ===============================

func TestLoadMockMode(t *testing.T) {
	fc := &fakeClient{}
	c := New(fc, ModeMock, WithClock(testClock))

	c.Load(context.Background())

	assert.True(t, c.UsingMock())
	assert.False(t, c.Loading())
	assert.Len(t, c.Appointments(), 3)
	assert.Len(t, c.Templates(), 3)
	assert.Len(t, c.Employees(), 3)
	assert.Zero(t, fc.fetchCalls, "mock mode must not touch the network")
}

func TestLoadLive(t *testing.T) {
	fc := &fakeClient{
		appointments: []wire.Appointment{liveAppointment("srv-1")},
		templates:    []wire.Template{{ID: "tpl-1", Name: "Coloração"}},
		employees:    []wire.Employee{{ID: "emp-9", Name: "Sofia Reis", Color: "#112233"}},
	}
	c := New(fc, ModeLive, WithClock(testClock))

	c.Load(context.Background())

	assert.False(t, c.UsingMock())
	aps := c.Appointments()
	require.Len(t, aps, 1)
	assert.Equal(t, "srv-1", aps[0].ID)
	assert.Equal(t, testDay.Add(13*time.Hour), aps[0].Start)

	emps := c.Employees()
	require.Len(t, emps, 1)
	assert.Equal(t, "emp-9", emps[0].ID)
	assert.Equal(t, "Sofia Reis", emps[0].Name)
}

func TestLoadFetchFailureFallsBackToMock(t *testing.T) {
	fc := &fakeClient{fetchErr: errors.New("connection refused")}
	c := New(fc, ModeLive, WithClock(testClock))

	c.Load(context.Background())

	assert.True(t, c.UsingMock())
	assert.Len(t, c.Appointments(), 3)
	assert.Len(t, c.Employees(), 3)
	assert.NoError(t, c.LastError(), "degradation is not a mutation failure")
}

func TestLoadTimeoutFallsBackToMock(t *testing.T) {
	fc := &fakeClient{
		appointments: []wire.Appointment{liveAppointment("srv-1")},
		fetchDelay:   time.Second,
	}
	c := New(fc, ModeLive, WithClock(testClock), WithLoadTimeout(10*time.Millisecond))

	c.Load(context.Background())

	assert.True(t, c.UsingMock())
	assert.Len(t, c.Appointments(), 3)
}

func TestLoadEmptyLiveKeepsMockRowsButStaysLive(t *testing.T) {
	fc := &fakeClient{}
	c := New(fc, ModeLive, WithClock(testClock))

	c.Load(context.Background())

	assert.False(t, c.UsingMock(), "an empty calendar is still a live backend")
	assert.Len(t, c.Appointments(), 3)
	assert.Empty(t, c.Templates(), "server's empty template set replaces the default")
}

func TestLoadLiveEmptyTemplatesReplaceDefault(t *testing.T) {
	fc := &fakeClient{appointments: []wire.Appointment{liveAppointment("srv-1")}}
	c := New(fc, ModeLive, WithClock(testClock))

	c.Load(context.Background())

	assert.False(t, c.UsingMock())
	assert.Empty(t, c.Templates())
}

func TestLoadSkipsAppointmentsWithoutSchedule(t *testing.T) {
	broken := liveAppointment("srv-2")
	broken.Segments = nil
	fc := &fakeClient{
		appointments: []wire.Appointment{liveAppointment("srv-1"), broken},
		templates:    []wire.Template{{ID: "tpl-1"}},
	}
	c := New(fc, ModeLive, WithClock(testClock))

	c.Load(context.Background())

	aps := c.Appointments()
	require.Len(t, aps, 1)
	assert.Equal(t, "srv-1", aps[0].ID)
}

func TestLoadRunsOnce(t *testing.T) {
	fc := &fakeClient{appointments: []wire.Appointment{liveAppointment("srv-1")}}
	c := New(fc, ModeLive, WithClock(testClock))

	c.Load(context.Background())
	c.Load(context.Background())

	assert.Equal(t, 1, fc.fetchCalls)
}

func TestReloadRefetches(t *testing.T) {
	fc := &fakeClient{appointments: []wire.Appointment{liveAppointment("srv-1")}}
	c := New(fc, ModeLive, WithClock(testClock))

	c.Load(context.Background())
	fc.appointments = []wire.Appointment{liveAppointment("srv-1"), liveAppointment("srv-2")}
	c.Reload(context.Background())

	assert.Equal(t, 2, fc.fetchCalls)
	assert.Len(t, c.Appointments(), 2)
}

// ===============================
// Create
// ===============================

func TestCreateMockModeStaysLocal(t *testing.T) {
	fc := &fakeClient{}
	c := New(fc, ModeMock, WithClock(testClock))
	c.Load(context.Background())

	ap, err := c.Create(newAppointment("emp-1", 16, 17), ConflictBlock)
	require.NoError(t, err)
	c.Wait()

	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, ap.ID, ap.GroupID)
	assert.Len(t, c.Appointments(), 4)
	assert.Zero(t, fc.createCalls)
}

func TestCreateLiveReconcilesServerID(t *testing.T) {
	fc := &fakeClient{
		appointments: []wire.Appointment{liveAppointment("srv-1")},
		createID:     "srv-99",
	}
	c := New(fc, ModeLive, WithClock(testClock))
	c.Load(context.Background())

	ap, err := c.Create(newAppointment("emp-2", 16, 17), ConflictBlock)
	require.NoError(t, err)
	c.Wait()

	var found *schedule.Appointment
	for _, got := range c.Appointments() {
		if got.ID == "srv-99" {
			g := got
			found = &g
		}
	}
	require.NotNil(t, found, "temporary id must be replaced by the server id")
	assert.NotEqual(t, ap.ID, "srv-99", "optimistic result carries the temporary id")
	assert.Equal(t, "srv-99", found.GroupID)
}

func TestCreateLiveRollsBackOnFailure(t *testing.T) {
	fc := &fakeClient{
		appointments: []wire.Appointment{liveAppointment("srv-1")},
		createErr:    errors.New("validation failed"),
	}
	c := New(fc, ModeLive, WithClock(testClock))
	c.Load(context.Background())

	_, err := c.Create(newAppointment("emp-2", 16, 17), ConflictBlock)
	require.NoError(t, err, "phase 1 is optimistic")
	c.Wait()

	assert.Len(t, c.Appointments(), 1, "rejected insert must be rolled back")
	assert.Error(t, c.LastError())
}

func TestCreateConflictPolicies(t *testing.T) {
	newOverlapping := func() schedule.Appointment {
		// Overlaps the 9:00-10:30 mock color appointment on emp-1.
		return newAppointment("emp-1", 9, 10)
	}

	t.Run("block rejects", func(t *testing.T) {
		c := New(&fakeClient{}, ModeMock, WithClock(testClock))
		c.Load(context.Background())

		_, err := c.Create(newOverlapping(), ConflictBlock)
		assert.ErrorIs(t, err, ErrConflict)
		assert.Len(t, c.Appointments(), 3)
	})

	t.Run("warn accepts", func(t *testing.T) {
		c := New(&fakeClient{}, ModeMock, WithClock(testClock))
		c.Load(context.Background())

		_, err := c.Create(newOverlapping(), ConflictWarn)
		assert.NoError(t, err)
		assert.Len(t, c.Appointments(), 4)
	})

	t.Run("ignore accepts", func(t *testing.T) {
		c := New(&fakeClient{}, ModeMock, WithClock(testClock))
		c.Load(context.Background())

		_, err := c.Create(newOverlapping(), ConflictIgnore)
		assert.NoError(t, err)
		assert.Len(t, c.Appointments(), 4)
	})
}

// ===============================
// Save / Delete
// ===============================

func TestSaveMovesAppointment(t *testing.T) {
	c := New(&fakeClient{}, ModeMock, WithClock(testClock))
	c.Load(context.Background())

	aps := c.Appointments()
	target := aps[1] // simple cut on emp-2
	target.Start = testDay.Add(16 * time.Hour)
	target.End = testDay.Add(17 * time.Hour)
	target.EmployeeID = "emp-3"

	require.NoError(t, c.Save(target, ConflictBlock))

	for _, got := range c.Appointments() {
		if got.ID == target.ID {
			assert.Equal(t, "emp-3", got.EmployeeID)
			assert.Equal(t, target.Start, got.Start)
			return
		}
	}
	t.Fatal("saved appointment not found")
}

func TestSaveExcludesSelfFromConflict(t *testing.T) {
	c := New(&fakeClient{}, ModeMock, WithClock(testClock))
	c.Load(context.Background())

	aps := c.Appointments()
	target := aps[0]
	target.Start = target.Start.Add(15 * time.Minute)
	target.End = target.End.Add(15 * time.Minute)

	assert.NoError(t, c.Save(target, ConflictBlock), "an appointment never conflicts with itself")
}

func TestSaveNotFound(t *testing.T) {
	c := New(&fakeClient{}, ModeMock, WithClock(testClock))
	c.Load(context.Background())

	ap := newAppointment("emp-1", 16, 17)
	ap.ID = "nope"
	assert.ErrorIs(t, c.Save(ap, ConflictIgnore), ErrNotFound)
}

func TestDelete(t *testing.T) {
	fc := &fakeClient{appointments: []wire.Appointment{liveAppointment("srv-1")}}
	c := New(fc, ModeLive, WithClock(testClock))
	c.Load(context.Background())

	require.NoError(t, c.Delete("srv-1"))
	c.Wait()

	assert.Empty(t, c.Appointments())
	assert.Equal(t, 1, fc.deleteCalls)
}

func TestDeleteNotFound(t *testing.T) {
	c := New(&fakeClient{}, ModeMock, WithClock(testClock))
	c.Load(context.Background())

	assert.ErrorIs(t, c.Delete("nope"), ErrNotFound)
}

func TestSyncFailureKeepsLocalState(t *testing.T) {
	fc := &fakeClient{
		appointments: []wire.Appointment{liveAppointment("srv-1")},
		syncErr:      errors.New("boom"),
	}
	c := New(fc, ModeLive, WithClock(testClock))
	c.Load(context.Background())

	require.NoError(t, c.Delete("srv-1"))
	c.Wait()

	assert.Empty(t, c.Appointments(), "local removal survives a failed sync")
	assert.Error(t, c.LastError())
}

// ===============================
// Split / templates
// ===============================

func TestSplitRederivesWindow(t *testing.T) {
	c := New(&fakeClient{}, ModeMock, WithClock(testClock))
	c.Load(context.Background())

	at := func(h, m int) time.Time { return testDay.Add(time.Duration(h*60+m) * time.Minute) }
	segs := []schedule.Segment{
		{Type: schedule.SegmentApply, Start: at(11, 0), End: at(11, 20), SortOrder: 0},
		{Type: schedule.SegmentWait, Start: at(11, 20), End: at(11, 50), SortOrder: 1},
		{Type: schedule.SegmentWash, Start: at(11, 50), End: at(12, 5), SortOrder: 2},
	}

	require.NoError(t, c.Split("mock-2", segs))

	for _, got := range c.Appointments() {
		if got.ID == "mock-2" {
			require.Len(t, got.Segments, 3)
			assert.Equal(t, at(11, 0), got.Start)
			assert.Equal(t, at(12, 5), got.End)
			for _, s := range got.Segments {
				assert.Equal(t, "mock-2", s.AppointmentID)
				assert.NotEmpty(t, s.ID)
			}
			return
		}
	}
	t.Fatal("split appointment not found")
}

func TestSplitNotFound(t *testing.T) {
	c := New(&fakeClient{}, ModeMock, WithClock(testClock))
	c.Load(context.Background())

	assert.ErrorIs(t, c.Split("nope", nil), ErrNotFound)
}

func TestApplyTemplate(t *testing.T) {
	c := New(&fakeClient{}, ModeMock, WithClock(testClock))
	c.Load(context.Background())

	start := testDay.Add(11 * time.Hour)
	require.NoError(t, c.ApplyTemplate("mock-2", "tpl-color", start))

	for _, got := range c.Appointments() {
		if got.ID == "mock-2" {
			require.Len(t, got.Segments, 3)
			assert.Equal(t, start, got.Start)
			assert.Equal(t, start.Add(65*time.Minute), got.End)
			assert.Equal(t, schedule.SegmentWait, got.Segments[1].Type)
			return
		}
	}
	t.Fatal("appointment not found")
}

func TestApplyTemplateUnknownTemplate(t *testing.T) {
	c := New(&fakeClient{}, ModeMock, WithClock(testClock))
	c.Load(context.Background())

	err := c.ApplyTemplate("mock-2", "nope", testDay.Add(11*time.Hour))
	assert.ErrorIs(t, err, ErrNoTemplate)
}

func TestApplyTemplateUnknownAppointment(t *testing.T) {
	c := New(&fakeClient{}, ModeMock, WithClock(testClock))
	c.Load(context.Background())

	err := c.ApplyTemplate("nope", "tpl-color", testDay.Add(11*time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)
}
