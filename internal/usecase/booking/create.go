package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/notify"
	"github.com/salonworks/salon-scheduler/internal/schedule"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	// StaffID nil means a "to be assigned" booking; no conflict check runs
	// until a staff member is attached.
	StaffID *uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	engine *schedule.Engine
	notify *notify.Dispatcher
	tz     string

	now func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	engine *schedule.Engine,
	notifier *notify.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		engine: engine,
		notify: notifier,
		tz:     tz,
		now:    func() time.Time { return timezone.NowIn(tz) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}
	if svc.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	if !start.After(uc.now()) {
		return nil, httperr.ErrBusiness("past_time")
	}

	end := domain.End(start, svc)

	// The availability query and the booking submission are not atomic with
	// each other, so the check runs again here. The repository repeats the
	// conflict part under a row lock inside the insert transaction.
	if in.StaffID != nil {
		if _, err := uc.repo.GetStaff(ctx, *in.StaffID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness("staff_not_found")
			}
			return nil, err
		}

		ok, err := uc.engine.IsAvailable(ctx, *in.StaffID, svc, start)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("time_conflict")
		}
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		Reference: uuid.NewString(),
		ClientID:  client.ID,
		ServiceID: svc.ID,
		StaffID:   in.StaffID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Type:        notify.EventBookingConfirmed,
		BookingRef:  b.Reference,
		ClientName:  client.Name,
		ClientEmail: client.Email,
		ServiceName: svc.Name,
		StartTime:   b.StartTime,
	})

	return b, nil
}
