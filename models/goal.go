package models

import "gorm.io/gorm"

// Nutrients a goal can target. Keys match the static food table columns.
const (
	NutrientEnergy  = "energy_kcal"
	NutrientProtein = "protein_g"
	NutrientLipid   = "lipid_g"
	NutrientCarb    = "carbohydrate_g"
	NutrientFiber   = "fiber_g"
)

// Nutrients lists the goal-able nutrients in display order.
var Nutrients = []string{
	NutrientEnergy,
	NutrientProtein,
	NutrientLipid,
	NutrientCarb,
	NutrientFiber,
}

func ValidNutrient(n string) bool {
	for _, known := range Nutrients {
		if n == known {
			return true
		}
	}
	return false
}

// Goal holds one user's daily target for one nutrient. At most one row per
// (user, nutrient); writes are upserts.
type Goal struct {
	gorm.Model
	UserID      uint    `gorm:"uniqueIndex:idx_goal_user_nutrient;not null"`
	Nutrient    string  `gorm:"uniqueIndex:idx_goal_user_nutrient;not null"`
	TargetValue float64 `gorm:"not null"`
}
