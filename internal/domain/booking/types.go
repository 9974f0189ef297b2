package booking

import "time"

// DefaultCancelCutoff is the minimum lead time before an appointment's start
// for a cancellation to be accepted.
const DefaultCancelCutoff = 120 * time.Minute

type AvailabilityInput struct {
	ServiceID uint
	Date      time.Time
}

// Slot is a bookable start time together with every staff member free for it.
type Slot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	StaffIDs  []uint    `json:"staff_ids"`
}
