package notify

import "time"

const (
	EventBookingConfirmed = "booking_confirmed"
	EventBookingCancelled = "booking_cancelled"
)

// Event is the outbound notification signal emitted after a successful
// booking state change. Delivery is fire-and-forget: a lost event never
// rolls back the booking.
type Event struct {
	Type        string    `json:"type"`
	BookingRef  string    `json:"booking_ref"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	ServiceName string    `json:"service_name"`
	StartTime   time.Time `json:"start_time"`
}
