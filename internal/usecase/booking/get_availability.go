package booking

import (
	"context"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/schedule"
)

type GetAvailability struct {
	repo   domain.Repository
	engine *schedule.Engine
}

func NewGetAvailability(repo domain.Repository, engine *schedule.Engine) *GetAvailability {
	return &GetAvailability{repo: repo, engine: engine}
}

// Execute returns the day's bookable slots for a service across the full
// staff roster. Slots whose start has already passed are still included;
// presentation layers serving "today" must drop them before offering any.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

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

	roster, err := uc.repo.ListStaff(ctx)
	if err != nil {
		return nil, err
	}

	return uc.engine.FindAvailableSlots(ctx, svc, in.Date, roster)
}
