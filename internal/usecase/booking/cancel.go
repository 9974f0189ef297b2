package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/notify"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

type CancelBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	cutoff time.Duration
	tz     string

	now func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	cutoff time.Duration,
	tz string,
) *CancelBooking {
	if cutoff <= 0 {
		cutoff = domain.DefaultCancelCutoff
	}
	return &CancelBooking{
		repo:   repo,
		notify: notifier,
		cutoff: cutoff,
		tz:     tz,
		now:    func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	// The record is kept for reporting; cancellation is a status flip only.
	if err := domain.Cancel(b, uc.now(), uc.cutoff); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Type:        notify.EventBookingCancelled,
		BookingRef:  b.Reference,
		ClientName:  b.Client.Name,
		ClientEmail: b.Client.Email,
		ServiceName: b.Service.Name,
		StartTime:   b.StartTime,
	})

	return b, nil
}
