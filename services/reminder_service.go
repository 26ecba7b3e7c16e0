package services

import (
	"errors"

	"gorm.io/gorm/clause"

	"github.com/marcelosanto/telegram-food-boot/config"
	"github.com/marcelosanto/telegram-food-boot/models"
	"github.com/marcelosanto/telegram-food-boot/utils"
)

var ErrInvalidReminder = errors.New("invalid reminder")

// UpsertReminder stores the daily slot for one reminder type, replacing any
// previous time. The time must already be a valid HH:MM.
func UpsertReminder(userID uint, reminderType, timeOfDay string) (*models.Reminder, error) {
	if !models.ValidReminderType(reminderType) {
		return nil, ErrInvalidReminder
	}
	normalized, err := utils.ParseClockTime(timeOfDay)
	if err != nil {
		return nil, ErrInvalidReminder
	}

	reminder := models.Reminder{
		UserID:       userID,
		ReminderType: reminderType,
		TimeOfDay:    normalized,
	}
	err = config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "reminder_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"time_of_day", "updated_at"}),
	}).Create(&reminder).Error
	if err != nil {
		return nil, err
	}

	// Create with OnConflict leaves the struct's TimeOfDay as passed in;
	// reload so callers see the stored row.
	var stored models.Reminder
	err = config.DB.
		Where("user_id = ? AND reminder_type = ?", userID, reminderType).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListReminders returns a user's reminder slots.
func ListReminders(userID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := config.DB.Where("user_id = ?", userID).Find(&reminders).Error
	return reminders, err
}

// AllReminders returns every persisted reminder, for re-arming at startup.
func AllReminders() ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := config.DB.Find(&reminders).Error
	return reminders, err
}
