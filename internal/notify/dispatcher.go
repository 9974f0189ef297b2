package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// Publisher delivers a single event to the outside world.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Dispatcher decouples booking flows from notification delivery: events are
// queued on a buffered channel and drained by one worker goroutine. When the
// queue is full the event is dropped rather than blocking the booking flow.
type Dispatcher struct {
	publisher Publisher
	logger    zerolog.Logger
	queue     chan Event
}

func NewDispatcher(publisher Publisher, logger zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		publisher: publisher,
		logger:    logger,
		queue:     make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.publisher.Publish(context.Background(), ev); err != nil {
			d.logger.Error().
				Err(err).
				Str("type", ev.Type).
				Str("booking_ref", ev.BookingRef).
				Msg("notification publish failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn().
			Str("type", ev.Type).
			Str("booking_ref", ev.BookingRef).
			Msg("notification queue full, dropping event")
	}
}

// Close stops the worker once queued events are drained.
func (d *Dispatcher) Close() {
	close(d.queue)
}
