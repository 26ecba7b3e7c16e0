package models

import "gorm.io/gorm"

const (
	ReminderMeal  = "meal_reminder"
	ReminderWater = "water_reminder"
)

func ValidReminderType(t string) bool {
	return t == ReminderMeal || t == ReminderWater
}

// Reminder is a daily notification slot. At most one row per
// (user, reminder type); writes are upserts.
type Reminder struct {
	gorm.Model
	UserID       uint   `gorm:"uniqueIndex:idx_reminder_user_type;not null"`
	ReminderType string `gorm:"uniqueIndex:idx_reminder_user_type;not null"`
	TimeOfDay    string `gorm:"not null"` // HH:MM
}
