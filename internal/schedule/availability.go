package schedule

import (
	"context"
	"time"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
)

// WindowPolicy decides how staff with zero availability windows are treated.
type WindowPolicy string

const (
	// WindowPolicyPermissive treats a staff member with no windows as
	// bookable at any non-conflicting time.
	WindowPolicyPermissive WindowPolicy = "permissive"

	// WindowPolicyRequireWindow treats a staff member with no windows as
	// never bookable.
	WindowPolicyRequireWindow WindowPolicy = "require_window"
)

// BookingSource is the slice of the booking store the engine reads from.
type BookingSource interface {
	HasTimeConflict(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	ListAvailabilityWindows(
		ctx context.Context,
		staffID uint,
	) ([]models.AvailabilityWindow, error)
}

type Engine struct {
	source   BookingSource
	settings SettingsProvider
	policy   WindowPolicy
}

func NewEngine(source BookingSource, settings SettingsProvider, policy WindowPolicy) *Engine {
	if policy == "" {
		policy = WindowPolicyPermissive
	}
	return &Engine{
		source:   source,
		settings: settings,
		policy:   policy,
	}
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Comparisons are strict, so two intervals that
// merely touch (aEnd == bStart) do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsAvailable reports whether a staff member is free to take svc at start:
// no confirmed booking of theirs overlaps [start, start+duration), and, when
// they have availability windows, the interval fits entirely inside one.
func (e *Engine) IsAvailable(
	ctx context.Context,
	staffID uint,
	svc *models.Service,
	start time.Time,
) (bool, error) {

	duration := time.Duration(svc.DurationMin) * time.Minute
	if duration <= 0 {
		return false, httperr.ErrBusiness("invalid_duration")
	}
	end := start.Add(duration)

	conflict, err := e.source.HasTimeConflict(ctx, staffID, start, end)
	if err != nil {
		return false, err
	}
	if conflict {
		return false, nil
	}

	windows, err := e.source.ListAvailabilityWindows(ctx, staffID)
	if err != nil {
		return false, err
	}

	if len(windows) == 0 {
		return e.policy == WindowPolicyPermissive, nil
	}

	for _, w := range windows {
		if !w.StartTime.After(start) && !w.EndTime.Before(end) {
			return true, nil
		}
	}
	return false, nil
}

// FindAvailableSlots walks the day's candidate slots and keeps those where at
// least one roster member is free, paired with every free staff ID. Slots
// come back in ascending start order.
//
// Past slots are NOT filtered here; callers presenting today's availability
// must drop starts at or before "now" themselves.
func (e *Engine) FindAvailableSlots(
	ctx context.Context,
	svc *models.Service,
	day time.Time,
	roster []models.Staff,
) ([]domain.Slot, error) {

	duration := time.Duration(svc.DurationMin) * time.Minute
	if duration <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	hours := ResolveBusinessHours(ctx, e.settings)

	var slots []domain.Slot
	for start := range Slots(day, duration, hours) {
		var free []uint
		for _, member := range roster {
			if member.ID == 0 {
				// roster rows without an identity cannot be booked; skip
				continue
			}
			ok, err := e.IsAvailable(ctx, member.ID, svc, start)
			if err != nil {
				return nil, err
			}
			if ok {
				free = append(free, member.ID)
			}
		}

		if len(free) > 0 {
			slots = append(slots, domain.Slot{
				StartTime: start,
				EndTime:   start.Add(duration),
				StaffIDs:  free,
			})
		}
	}

	return slots, nil
}
