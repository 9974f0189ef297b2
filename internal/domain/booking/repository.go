package booking

import (
	"context"
	"time"

	"github.com/salonworks/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Staff --------
	GetStaff(
		ctx context.Context,
		id uint,
	) (*models.Staff, error)

	ListStaff(
		ctx context.Context,
	) ([]models.Staff, error)

	ListAvailabilityWindows(
		ctx context.Context,
		staffID uint,
	) ([]models.AvailabilityWindow, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking (create / conflict) --------

	// CreateBooking persists a new booking. When the booking has a staff
	// member assigned, the conflict recheck and the insert run inside a
	// single transaction with the staff member's confirmed bookings locked,
	// so two overlapping creations cannot both commit.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	HasTimeConflict(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForPeriod(
		ctx context.Context,
		staffID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
