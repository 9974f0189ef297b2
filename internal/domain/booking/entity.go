package booking

import (
	"time"

	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel transitions a booking to CANCELLED, enforcing the cancellation
// cutoff: once less than or exactly cutoff remains before the start time,
// cancellation is refused and the booking stays CONFIRMED.
func Cancel(b *models.Booking, now time.Time, cutoff time.Duration) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	if b.StartTime.Sub(now) <= cutoff {
		return httperr.ErrBusiness("cancel_cutoff")
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// End computes a booking's end from its start and the service duration.
func End(start time.Time, svc *models.Service) time.Time {
	return start.Add(time.Duration(svc.DurationMin) * time.Minute)
}
