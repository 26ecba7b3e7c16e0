package models

import "gorm.io/gorm"

// WaterEntry is one glass/bottle logged during a day. Append-only.
type WaterEntry struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null"`
	AmountML float64 `gorm:"not null"`
	Date     string  `gorm:"index;not null"` // YYYY-MM-DD
}
