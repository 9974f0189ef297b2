package booking

import "github.com/salonworks/salon-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// ===============================
// Validations
// ===============================

// CanCancel reports whether a booking in the given state may transition to
// CANCELLED. Transitions only move forward; a cancelled booking is terminal.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus is the state every new booking is created in.
func InitialStatus() Status {
	return StatusConfirmed
}
