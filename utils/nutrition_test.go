package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelosanto/telegram-food-boot/models"
)

func TestScaleNutrientsLinear(t *testing.T) {
	food := models.FoodRecord{
		ID: 12, Description: "Arroz, branco, cozido",
		EnergyKcal: 130, ProteinG: 2.5, LipidG: 0.2, CarbohydrateG: 28.1, FiberG: 1.6,
	}

	got := ScaleNutrients(food, 200)
	assert.InDelta(t, 260.0, got.EnergyKcal, 1e-9)
	assert.InDelta(t, 5.0, got.ProteinG, 1e-9)
	assert.InDelta(t, 0.4, got.LipidG, 1e-9)
	assert.InDelta(t, 56.2, got.CarbohydrateG, 1e-9)
	assert.InDelta(t, 3.2, got.FiberG, 1e-9)

	// scaling by 100g is the identity
	same := ScaleNutrients(food, 100)
	assert.InDelta(t, float64(food.EnergyKcal), same.EnergyKcal, 1e-9)
}

func TestScaleNutrientsNAIsZero(t *testing.T) {
	var food models.FoodRecord
	raw := `{"id": 7, "description": "Leite, vaca, integral",
		"energy_kcal": "61", "protein_g": "2.9", "lipid_g": "3.2",
		"carbohydrate_g": "4.5", "fiber_g": "NA"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &food))

	got := ScaleNutrients(food, 350)
	assert.Zero(t, got.FiberG)
	assert.InDelta(t, 213.5, got.EnergyKcal, 1e-9)
}

func TestCalculateIMC(t *testing.T) {
	imc, err := CalculateIMC(70, 175)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, imc, 0.01)
	assert.Equal(t, "Peso normal", IMCCategory(imc))

	_, err = CalculateIMC(0, 175)
	assert.Error(t, err)
	_, err = CalculateIMC(70, -1)
	assert.Error(t, err)
}

func TestIMCCategoryPartition(t *testing.T) {
	cases := []struct {
		imc  float64
		want string
	}{
		{0, "Abaixo do peso"},
		{18.49, "Abaixo do peso"},
		{18.5, "Peso normal"},
		{24.99, "Peso normal"},
		{25, "Sobrepeso"},
		{29.99, "Sobrepeso"},
		{30, "Obesidade grau I"},
		{34.99, "Obesidade grau I"},
		{35, "Obesidade grau II"},
		{39.99, "Obesidade grau II"},
		{40, "Obesidade grau III"},
		{120, "Obesidade grau III"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IMCCategory(tc.imc), "imc=%v", tc.imc)
		assert.NotEmpty(t, IMCInterpretation(tc.imc))
	}
}

func TestCalculateTMB(t *testing.T) {
	// female, 60kg, 165cm, 30y
	assert.InDelta(t, 1251.25, CalculateTMB(60, 165, 30, GenderFemale), 1e-9)
	// male adds +5 instead of -161
	assert.InDelta(t, 10*80+6.25*180-5*25+5, CalculateTMB(80, 180, 25, GenderMale), 1e-9)
}

func TestCalculateTDEE(t *testing.T) {
	tdee, err := CalculateTDEE(1251.25, "moderate")
	if assert.NoError(t, err) {
		assert.InDelta(t, 1939.4375, tdee, 1e-9)
	}

	_, err = CalculateTDEE(1500, "heroic")
	assert.Error(t, err)
}

func TestCalculateTDEEMonotonic(t *testing.T) {
	const bmr = 1600.0
	prev := 0.0
	for _, level := range ActivityLevels {
		tdee, err := CalculateTDEE(bmr, level)
		if assert.NoError(t, err) {
			assert.Greater(t, tdee, prev, "level %s", level)
			prev = tdee
		}
	}
}

func TestCalculateFatPercentage(t *testing.T) {
	// female: 1.2*22 + 0.23*30 - 5.4
	assert.InDelta(t, 27.9, CalculateFatPercentage(22, 30, GenderFemale), 1e-9)
	// male subtracts a further 10.8
	assert.InDelta(t, 17.1, CalculateFatPercentage(22, 30, GenderMale), 1e-9)
}

func TestCalculateFatPercentageClamped(t *testing.T) {
	assert.Zero(t, CalculateFatPercentage(1, 0, GenderMale))
	assert.GreaterOrEqual(t, CalculateFatPercentage(0.1, 1, GenderFemale), 0.0)
}
