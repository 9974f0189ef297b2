package models

import "time"

// SystemSetting is a simple key/value settings row.
// Known keys: BUSINESS_OPEN ("09:00"), BUSINESS_CLOSE ("17:00").
type SystemSetting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value string `gorm:"size:200" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
