package models

import "time"

// PriceHistory records service price changes for reporting.
type PriceHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID uint    `gorm:"index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	OldPrice float64 `json:"old_price"`
	NewPrice float64 `json:"new_price"`

	ChangedBy *uint `json:"changed_by"`

	CreatedAt time.Time `json:"created_at"`
}
