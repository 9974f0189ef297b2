package models

import "time"

type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:200;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`
	Role  string `gorm:"size:100" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvailabilityWindow is an explicit range during which a staff member can be
// booked. A staff member with no windows at all is treated according to the
// engine's window policy (permissive by default).
type AvailabilityWindow struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	StaffID uint  `gorm:"index" json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
