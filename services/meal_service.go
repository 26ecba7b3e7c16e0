package services

import (
	"errors"
	"time"

	"github.com/marcelosanto/telegram-food-boot/config"
	"github.com/marcelosanto/telegram-food-boot/models"
)

var ErrInvalidMeal = errors.New("invalid meal entry")

type MealService struct {
	foods *FoodTable
}

func NewMealService(foods *FoodTable) *MealService {
	return &MealService{foods: foods}
}

// AddMeal validates and persists one meal entry. The food id must resolve
// in the static table and the quantity must be positive.
func (s *MealService) AddMeal(userID uint, mealType string, foodID int, quantityGrams float64) (*models.MealEntry, error) {
	if !models.ValidMealType(mealType) {
		return nil, ErrInvalidMeal
	}
	if quantityGrams <= 0 {
		return nil, ErrInvalidMeal
	}
	if _, err := s.foods.Get(foodID); err != nil {
		return nil, ErrFoodNotFound
	}

	entry := &models.MealEntry{
		UserID:        userID,
		MealType:      mealType,
		FoodID:        foodID,
		QuantityGrams: quantityGrams,
		Timestamp:     time.Now(),
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// MealsOfDay lists a user's entries for one calendar day, oldest first.
func (s *MealService) MealsOfDay(userID uint, day time.Time) ([]models.MealEntry, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	var entries []models.MealEntry
	err := config.DB.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, from, to).
		Order("timestamp ASC").
		Find(&entries).Error
	return entries, err
}
