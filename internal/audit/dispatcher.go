package audit

import "github.com/sirupsen/logrus"

type Event struct {
	SalonID  string
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Dispatcher writes audit entries off the request path. The queue never
// blocks a handler: when it is full the event is dropped and logged.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.SalonID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logrus.WithError(err).Warn("audit: write failed")
		}
	}
}

// Dispatch enqueues an event. A nil dispatcher is a no-op, so callers can run
// without auditing wired up.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		logrus.WithField("action", ev.Action).Warn("audit: queue full, dropping event")
	}
}
