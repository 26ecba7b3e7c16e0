package services

import (
	"errors"

	"gorm.io/gorm/clause"

	"github.com/marcelosanto/telegram-food-boot/config"
	"github.com/marcelosanto/telegram-food-boot/models"
)

var ErrInvalidGoal = errors.New("invalid goal")

// UpsertGoal stores a user's daily target for one nutrient, replacing any
// previous value for the same nutrient.
func UpsertGoal(userID uint, nutrient string, targetValue float64) error {
	if !models.ValidNutrient(nutrient) || targetValue <= 0 {
		return ErrInvalidGoal
	}

	goal := models.Goal{
		UserID:      userID,
		Nutrient:    nutrient,
		TargetValue: targetValue,
	}
	return config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "nutrient"}},
		DoUpdates: clause.AssignmentColumns([]string{"target_value", "updated_at"}),
	}).Create(&goal).Error
}

// ListGoals returns every goal a user has set.
func ListGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := config.DB.Where("user_id = ?", userID).Find(&goals).Error
	return goals, err
}
