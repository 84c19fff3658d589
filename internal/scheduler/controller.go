package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/glowdesk/salon-scheduler/internal/schedule"
	"github.com/glowdesk/salon-scheduler/internal/wire"
)

// DefaultLoadTimeout bounds each startup fetch. A response arriving later is
// ignored for the mock-vs-live decision.
const DefaultLoadTimeout = 4 * time.Second

const mutationTimeout = 10 * time.Second

// Controller is the single owner of appointment/template state for one
// calendar view. Local mutations are applied synchronously (phase 1); server
// sync (phase 2) runs in the background and reconciles by id, so completion
// order is not guaranteed to match issue order.
type Controller struct {
	client Client
	mode   Mode
	log    *logrus.Entry

	loadTimeout time.Duration
	clock       func() time.Time

	mu           sync.Mutex
	appointments []schedule.Appointment
	templates    []schedule.SplitTemplate
	employees    []schedule.Employee
	loading      bool
	loaded       bool
	usingMock    bool
	lastErr      error

	wg sync.WaitGroup
}

type Option func(*Controller)

func WithLoadTimeout(d time.Duration) Option {
	return func(c *Controller) { c.loadTimeout = d }
}

func WithLogger(log *logrus.Entry) Option {
	return func(c *Controller) { c.log = log }
}

// WithClock overrides the time source used for the mock dataset anchor.
func WithClock(clock func() time.Time) Option {
	return func(c *Controller) { c.clock = clock }
}

func New(client Client, mode Mode, opts ...Option) *Controller {
	c := &Controller{
		client:      client,
		mode:        mode,
		log:         logrus.NewEntry(logrus.StandardLogger()),
		loadTimeout: DefaultLoadTimeout,
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ===============================
// Snapshots
// ===============================

func (c *Controller) Appointments() []schedule.Appointment {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]schedule.Appointment, len(c.appointments))
	copy(out, c.appointments)
	return out
}

func (c *Controller) Templates() []schedule.SplitTemplate {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]schedule.SplitTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// Employees returns the staff directory backing the calendar columns.
func (c *Controller) Employees() []schedule.Employee {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]schedule.Employee, len(c.employees))
	copy(out, c.employees)
	return out
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller) UsingMock() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usingMock
}

// LastError returns the most recent mutation failure, if any.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = nil
}

// Wait drains in-flight phase-2 syncs. Used by tests and shutdown.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// ===============================
// Startup / reload
// ===============================

// Load runs the startup protocol at most once per controller lifetime.
// In mock mode the network is skipped entirely. In live mode appointments,
// templates and employees are fetched concurrently, each bounded by the load
// timeout; any failure degrades to the built-in dataset without recording an
// error.
func (c *Controller) Load(ctx context.Context) {
	c.mu.Lock()
	if c.loaded {
		c.mu.Unlock()
		return
	}
	c.loaded = true
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	now := c.clock()

	if c.mode == ModeMock {
		c.install(MockAppointments(now), MockTemplates(), MockEmployees(), true)
		return
	}

	fetchCtx, cancel := context.WithTimeout(ctx, c.loadTimeout)
	defer cancel()

	var (
		wg      sync.WaitGroup
		aps     []wire.Appointment
		tpls    []wire.Template
		emps    []wire.Employee
		apsErr  error
		tplsErr error
		empsErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		aps, apsErr = c.client.GetAppointments(fetchCtx)
	}()
	go func() {
		defer wg.Done()
		tpls, tplsErr = c.client.GetTemplates(fetchCtx)
	}()
	go func() {
		defer wg.Done()
		emps, empsErr = c.client.GetEmployees(fetchCtx)
	}()
	wg.Wait()

	if apsErr != nil || tplsErr != nil || empsErr != nil {
		// Expected degradation, not a failure to surface.
		c.log.WithFields(logrus.Fields{
			"appointments_err": apsErr,
			"templates_err":    tplsErr,
			"employees_err":    empsErr,
		}).Warn("scheduler: backend unavailable, falling back to mock data")
		c.install(MockAppointments(now), MockTemplates(), MockEmployees(), true)
		return
	}

	domainAps := make([]schedule.Appointment, 0, len(aps))
	for _, w := range aps {
		ap, err := wire.ToDomainAppointment(w)
		if err != nil {
			c.log.WithError(err).WithField("appointment_id", w.ID).
				Warn("scheduler: skipping appointment without usable schedule")
			continue
		}
		domainAps = append(domainAps, ap)
	}

	domainTpls := make([]schedule.SplitTemplate, 0, len(tpls))
	for _, w := range tpls {
		domainTpls = append(domainTpls, wire.ToDomainTemplate(w))
	}

	domainEmps := make([]schedule.Employee, 0, len(emps))
	for _, w := range emps {
		domainEmps = append(domainEmps, wire.ToDomainEmployee(w))
	}

	// An empty live calendar is indistinguishable from "not yet wired up";
	// keep the representative rows on screen. Templates and employees always
	// take the server's answer, empty or not. UsingMock still reports the
	// server outcome, not data emptiness.
	if len(domainAps) == 0 {
		domainAps = MockAppointments(now)
	}

	c.install(domainAps, domainTpls, domainEmps, false)
}

// Reload resets the has-loaded flag and re-runs the whole startup protocol.
func (c *Controller) Reload(ctx context.Context) {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
	c.Load(ctx)
}

func (c *Controller) install(aps []schedule.Appointment, tpls []schedule.SplitTemplate, emps []schedule.Employee, mock bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.appointments = aps
	c.templates = tpls
	c.employees = emps
	c.usingMock = mock
}

// ===============================
// Mutations (two-phase)
// ===============================

// Create inserts the appointment locally and, in live mode, syncs it to the
// server. The optimistic record carries a temporary id that is replaced by
// the server-assigned one on success; on failure the insert is rolled back.
func (c *Controller) Create(ap schedule.Appointment, policy ConflictPolicy) (schedule.Appointment, error) {
	c.mu.Lock()
	if err := c.checkConflict(ap.EmployeeID, ap.Start, ap.End, "", policy); err != nil {
		c.mu.Unlock()
		return schedule.Appointment{}, err
	}
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	ap.GroupID = ap.ID
	tempID := ap.ID
	c.appointments = append(c.appointments, ap)
	mock := c.usingMock
	c.mu.Unlock()

	if !mock {
		c.async(func(ctx context.Context) {
			created, err := c.client.CreateAppointment(ctx, wire.ToWireAppointment(ap))
			c.mu.Lock()
			defer c.mu.Unlock()
			if err != nil {
				c.lastErr = err
				c.removeLocked(tempID)
				c.log.WithError(err).Warn("scheduler: create rejected, rolling back optimistic insert")
				return
			}
			for i := range c.appointments {
				if c.appointments[i].ID == tempID {
					c.appointments[i].ID = created.ID
					c.appointments[i].GroupID = created.ID
					for j := range c.appointments[i].Segments {
						c.appointments[i].Segments[j].AppointmentID = created.ID
					}
				}
			}
		})
	}

	return ap, nil
}

// Save applies an edit (time change, employee reassignment, field edits) to
// the local record and syncs it in live mode. Unlike Create, a server failure
// leaves local state ahead of the server; Reload reconciles.
func (c *Controller) Save(ap schedule.Appointment, policy ConflictPolicy) error {
	c.mu.Lock()
	if err := c.checkConflict(ap.EmployeeID, ap.Start, ap.End, ap.ID, policy); err != nil {
		c.mu.Unlock()
		return err
	}
	found := false
	for i := range c.appointments {
		if c.appointments[i].ID == ap.ID {
			c.appointments[i] = ap
			found = true
			break
		}
	}
	mock := c.usingMock
	c.mu.Unlock()

	if !found {
		return ErrNotFound
	}

	if !mock {
		c.async(func(ctx context.Context) {
			if err := c.client.UpdateAppointment(ctx, ap.ID, wire.ToWireAppointment(ap)); err != nil {
				c.fail("update", err)
			}
		})
	}
	return nil
}

// Delete removes the appointment locally and syncs the removal in live mode.
func (c *Controller) Delete(id string) error {
	c.mu.Lock()
	existed := c.removeLocked(id)
	mock := c.usingMock
	c.mu.Unlock()

	if !existed {
		return ErrNotFound
	}

	if !mock {
		c.async(func(ctx context.Context) {
			if err := c.client.DeleteAppointment(ctx, id); err != nil {
				c.fail("delete", err)
			}
		})
	}
	return nil
}

// Split replaces the appointment's segment list atomically and re-derives its
// start/end. Callers validate the segments first.
func (c *Controller) Split(id string, segments []schedule.Segment) error {
	c.mu.Lock()
	var target *schedule.Appointment
	for i := range c.appointments {
		if c.appointments[i].ID == id {
			target = &c.appointments[i]
			break
		}
	}
	if target == nil {
		c.mu.Unlock()
		return ErrNotFound
	}

	segs := make([]schedule.Segment, len(segments))
	copy(segs, segments)
	for i := range segs {
		segs[i].AppointmentID = id
		if segs[i].ID == "" {
			segs[i].ID = uuid.NewString()
		}
	}
	target.Segments = segs
	target.SyncFromSegments()
	mock := c.usingMock
	c.mu.Unlock()

	if !mock {
		c.async(func(ctx context.Context) {
			wireSegs := make([]wire.Segment, 0, len(segs))
			for _, s := range segs {
				wireSegs = append(wireSegs, wire.ToWireSegment(s))
			}
			if err := c.client.SplitAppointment(ctx, id, wireSegs); err != nil {
				c.fail("split", err)
			}
		})
	}
	return nil
}

// ApplyTemplate expands the template into a contiguous segment chain anchored
// at startTime and installs it on the appointment. In mock mode the expansion
// is computed entirely from local data.
func (c *Controller) ApplyTemplate(appointmentID, templateID string, startTime time.Time) error {
	c.mu.Lock()
	var tpl *schedule.SplitTemplate
	for i := range c.templates {
		if c.templates[i].ID == templateID {
			tpl = &c.templates[i]
			break
		}
	}
	if tpl == nil {
		c.mu.Unlock()
		return ErrNoTemplate
	}

	var target *schedule.Appointment
	for i := range c.appointments {
		if c.appointments[i].ID == appointmentID {
			target = &c.appointments[i]
			break
		}
	}
	if target == nil {
		c.mu.Unlock()
		return ErrNotFound
	}

	target.Segments = schedule.BuildSegments(*tpl, appointmentID, startTime)
	target.SyncFromSegments()
	mock := c.usingMock
	c.mu.Unlock()

	if !mock {
		c.async(func(ctx context.Context) {
			if err := c.client.ApplyTemplate(ctx, appointmentID, templateID, startTime); err != nil {
				c.fail("apply_template", err)
			}
		})
	}
	return nil
}

// ===============================
// Internals
// ===============================

// checkConflict applies the conflict policy under c.mu.
func (c *Controller) checkConflict(employeeID string, start, end time.Time, excludeID string, policy ConflictPolicy) error {
	if policy == ConflictIgnore || policy == "" {
		return nil
	}
	if !schedule.HasOverlap(c.appointments, employeeID, start, end, excludeID) {
		return nil
	}
	if policy == ConflictWarn {
		c.log.WithFields(logrus.Fields{
			"employee_id": employeeID,
			"start":       start,
			"end":         end,
		}).Warn("scheduler: overlapping appointment accepted under warn policy")
		return nil
	}
	return ErrConflict
}

func (c *Controller) removeLocked(id string) bool {
	for i := range c.appointments {
		if c.appointments[i].ID == id {
			c.appointments = append(c.appointments[:i], c.appointments[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Controller) fail(op string, err error) {
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
	c.log.WithError(err).WithField("op", op).Warn("scheduler: server sync failed, local state kept")
}

func (c *Controller) async(fn func(ctx context.Context)) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
		defer cancel()
		fn(ctx)
	}()
}
