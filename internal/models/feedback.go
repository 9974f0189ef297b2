package models

import "time"

// Feedback is left by a client after an appointment, one per booking.
type Feedback struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `gorm:"uniqueIndex" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"size:255" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
