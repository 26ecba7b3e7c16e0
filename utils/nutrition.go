package utils

import (
	"errors"

	"github.com/marcelosanto/telegram-food-boot/models"
)

// ScaleNutrients expects quantity in grams and returns the food's per-100g
// values scaled linearly. "NA" source values are already zero after load.
func ScaleNutrients(food models.FoodRecord, quantityGrams float64) models.NutrientAmounts {
	factor := quantityGrams / 100.0
	return models.NutrientAmounts{
		EnergyKcal:    float64(food.EnergyKcal) * factor,
		ProteinG:      float64(food.ProteinG) * factor,
		LipidG:        float64(food.LipidG) * factor,
		CarbohydrateG: float64(food.CarbohydrateG) * factor,
		FiberG:        float64(food.FiberG) * factor,
	}
}

// CalculateIMC expects height in centimeters and weight in kilograms.
func CalculateIMC(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

// IMCCategory returns the band name for an IMC value.
func IMCCategory(imc float64) string {
	switch {
	case imc < 18.5:
		return "Abaixo do peso"
	case imc < 25.0:
		return "Peso normal"
	case imc < 30.0:
		return "Sobrepeso"
	case imc < 35.0:
		return "Obesidade grau I"
	case imc < 40.0:
		return "Obesidade grau II"
	default:
		return "Obesidade grau III"
	}
}

// IMCInterpretation returns the narrative shown alongside the category.
func IMCInterpretation(imc float64) string {
	switch {
	case imc < 18.5:
		return "Você está abaixo do peso ideal. Considere consultar um nutricionista."
	case imc < 25.0:
		return "Seu peso está na faixa considerada saudável."
	case imc < 30.0:
		return "Você está com sobrepeso. Uma dieta equilibrada pode ajudar."
	case imc < 35.0:
		return "Você está no grau I de obesidade. Consulte um profissional."
	case imc < 40.0:
		return "Você está no grau II de obesidade. Atenção à saúde é importante."
	default:
		return "Você está no grau III de obesidade. Busque orientação médica."
	}
}

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// CalculateTMB is the Mifflin-St Jeor basal metabolic rate in kcal/day.
func CalculateTMB(weightKg, heightCm, ageYears float64, gender string) float64 {
	tmb := 10*weightKg + 6.25*heightCm - 5*ageYears
	if gender == GenderMale {
		return tmb + 5
	}
	return tmb - 161
}

// ActivityMultipliers maps activity level to the TDEE factor.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// ActivityLevels lists the levels in increasing intensity order.
var ActivityLevels = []string{"sedentary", "light", "moderate", "active", "very_active"}

// CalculateTDEE scales a basal rate by the activity factor. Unknown levels
// return an error rather than a silent 0.
func CalculateTDEE(tmb float64, activityLevel string) (float64, error) {
	m, ok := ActivityMultipliers[activityLevel]
	if !ok {
		return 0, errors.New("unknown activity level: " + activityLevel)
	}
	return tmb * m, nil
}

// CalculateFatPercentage estimates body fat via the Deurenberg formula.
// Never negative.
func CalculateFatPercentage(imc, ageYears float64, gender string) float64 {
	fat := 1.2*imc + 0.23*ageYears - 5.4
	if gender == GenderMale {
		fat -= 10.8
	}
	if fat < 0 {
		return 0
	}
	return fat
}
