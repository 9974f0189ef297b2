package booking

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	domain "github.com/salonworks/salon-scheduler/internal/domain/booking"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/schedule"
)

// fakeRepo is an in-memory domain.Repository (and schedule.BookingSource)
// for exercising the use cases without a database.
type fakeRepo struct {
	services map[uint]*models.Service
	staff    map[uint]*models.Staff
	windows  map[uint][]models.AvailabilityWindow
	clients  []*models.Client
	bookings []*models.Booking
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[uint]*models.Service{},
		staff:    map[uint]*models.Staff{},
		windows:  map[uint][]models.AvailabilityWindow{},
	}
}

func (r *fakeRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return svc, nil
}

func (r *fakeRepo) GetStaff(_ context.Context, id uint) (*models.Staff, error) {
	member, ok := r.staff[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return member, nil
}

func (r *fakeRepo) ListStaff(_ context.Context) ([]models.Staff, error) {
	var roster []models.Staff
	for _, member := range r.staff {
		roster = append(roster, *member)
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].ID < roster[j].ID })
	return roster, nil
}

func (r *fakeRepo) ListAvailabilityWindows(_ context.Context, staffID uint) ([]models.AvailabilityWindow, error) {
	return r.windows[staffID], nil
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, name, phone, email string) (*models.Client, error) {
	for _, c := range r.clients {
		if c.Phone == phone {
			return c, nil
		}
	}
	client := &models.Client{ID: r.id(), Name: name, Phone: phone, Email: email}
	r.clients = append(r.clients, client)
	return client, nil
}

func (r *fakeRepo) HasTimeConflict(_ context.Context, staffID uint, start, end time.Time) (bool, error) {
	for _, b := range r.bookings {
		if b.StaffID == nil || *b.StaffID != staffID {
			continue
		}
		if b.Status != string(domain.StatusConfirmed) {
			continue
		}
		if schedule.Overlaps(start, end, b.StartTime, b.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if b.StaffID != nil {
		conflict, err := r.HasTimeConflict(ctx, *b.StaffID, b.StartTime, b.EndTime)
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	b.ID = r.id()
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i, existing := range r.bookings {
		if existing.ID == b.ID {
			r.bookings[i] = b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListBookingsForPeriod(_ context.Context, staffID *uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if staffID != nil && (b.StaffID == nil || *b.StaffID != *staffID) {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
var _ schedule.BookingSource = (*fakeRepo)(nil)
