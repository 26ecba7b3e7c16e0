package models

import (
	"time"

	"gorm.io/gorm"
)

// Valid meal types, as presented to the user.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealSnack     = "snack"
	MealDinner    = "dinner"
	MealSupper    = "supper"
)

func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealSnack, MealDinner, MealSupper:
		return true
	}
	return false
}

// MealEntry records one portion of one food eaten at one meal.
type MealEntry struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"`
	MealType      string `gorm:"not null"`
	FoodID        int    `gorm:"not null"` // id in the static food table
	QuantityGrams float64
	Timestamp     time.Time `gorm:"index"`
}
