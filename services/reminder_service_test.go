package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelosanto/telegram-food-boot/models"
)

func TestUpsertReminderReplacesTime(t *testing.T) {
	setupTestDB(t)

	first, err := UpsertReminder(1, models.ReminderMeal, "08:00")
	require.NoError(t, err)
	assert.Equal(t, "08:00", first.TimeOfDay)

	second, err := UpsertReminder(1, models.ReminderMeal, "12:30")
	require.NoError(t, err)
	assert.Equal(t, "12:30", second.TimeOfDay)

	reminders, err := ListReminders(1)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "12:30", reminders[0].TimeOfDay)
}

func TestUpsertReminderNormalizesTime(t *testing.T) {
	setupTestDB(t)

	reminder, err := UpsertReminder(1, models.ReminderWater, "8:5")
	require.NoError(t, err)
	assert.Equal(t, "08:05", reminder.TimeOfDay)
}

func TestUpsertReminderRejectsInvalid(t *testing.T) {
	setupTestDB(t)

	_, err := UpsertReminder(1, models.ReminderMeal, "25:00")
	assert.ErrorIs(t, err, ErrInvalidReminder)

	_, err = UpsertReminder(1, models.ReminderMeal, "12:60")
	assert.ErrorIs(t, err, ErrInvalidReminder)

	_, err = UpsertReminder(1, "sleep_reminder", "08:00")
	assert.ErrorIs(t, err, ErrInvalidReminder)
}

func TestAllRemindersSpansUsers(t *testing.T) {
	setupTestDB(t)

	_, err := UpsertReminder(1, models.ReminderMeal, "08:00")
	require.NoError(t, err)
	_, err = UpsertReminder(2, models.ReminderWater, "10:00")
	require.NoError(t, err)

	all, err := AllReminders()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
