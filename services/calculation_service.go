package services

import (
	"time"

	"github.com/marcelosanto/telegram-food-boot/config"
	"github.com/marcelosanto/telegram-food-boot/models"
)

// SaveCalculation appends one calculator result.
func SaveCalculation(userID uint, calcType string, result float64, details string) error {
	calc := models.Calculation{
		UserID:    userID,
		CalcType:  calcType,
		Result:    result,
		Details:   details,
		Timestamp: time.Now(),
	}
	return config.DB.Create(&calc).Error
}

// LatestCalculations returns the most recent n results, newest first.
func LatestCalculations(userID uint, n int) ([]models.Calculation, error) {
	var calcs []models.Calculation
	err := config.DB.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(n).
		Find(&calcs).Error
	return calcs, err
}
