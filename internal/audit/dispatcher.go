package audit

import "log"

type Event struct {
	SessionID     string
	Tool          string
	Status        string
	ContactNumber string
	Payload       any
}

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
			ev.SessionID,
			ev.Tool,
			ev.Status,
			ev.ContactNumber,
			ev.Payload,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// never block the booking flow on the audit trail
		log.Println("audit queue full, dropping event")
	}
}
