package services

import (
	"errors"
	"time"

	"github.com/marcelosanto/telegram-food-boot/config"
	"github.com/marcelosanto/telegram-food-boot/models"
)

var ErrInvalidAmount = errors.New("amount must be positive")

const dayFormat = "2006-01-02"

// AddWater appends one entry and returns the day's running total in ml.
func AddWater(userID uint, amountML float64) (float64, error) {
	if amountML <= 0 {
		return 0, ErrInvalidAmount
	}

	entry := models.WaterEntry{
		UserID:   userID,
		AmountML: amountML,
		Date:     time.Now().Format(dayFormat),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return 0, err
	}
	return WaterTotal(userID, time.Now())
}

// WaterTotal sums a user's intake for one calendar day.
func WaterTotal(userID uint, day time.Time) (float64, error) {
	var total float64
	err := config.DB.Model(&models.WaterEntry{}).
		Where("user_id = ? AND date = ?", userID, day.Format(dayFormat)).
		Select("COALESCE(SUM(amount_ml), 0)").
		Scan(&total).Error
	return total, err
}
