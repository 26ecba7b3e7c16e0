package models

import (
	"bytes"
	"strconv"
)

// NAFloat is a per-100g nutrient value from the food composition source.
// The source files store numbers as strings and mark missing values with
// "NA"; both decode to plain float64, with "NA" treated as zero.
type NAFloat float64

func (f *NAFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if string(data) == "NA" || string(data) == "null" || len(data) == 0 {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = NAFloat(v)
	return nil
}

// FoodRecord is one row of the static food table (tabela_alimentos.json).
// Nutrient values are per 100g.
type FoodRecord struct {
	ID            int     `json:"id"`
	Description   string  `json:"description"`
	EnergyKcal    NAFloat `json:"energy_kcal"`
	ProteinG      NAFloat `json:"protein_g"`
	LipidG        NAFloat `json:"lipid_g"`
	CarbohydrateG NAFloat `json:"carbohydrate_g"`
	FiberG        NAFloat `json:"fiber_g"`
}

// NutrientAmounts carries the scaled nutrient values for one portion.
type NutrientAmounts struct {
	EnergyKcal    float64 `json:"energy_kcal"`
	ProteinG      float64 `json:"protein_g"`
	LipidG        float64 `json:"lipid_g"`
	CarbohydrateG float64 `json:"carbohydrate_g"`
	FiberG        float64 `json:"fiber_g"`
}

// Add accumulates another portion into the running totals.
func (n *NutrientAmounts) Add(other NutrientAmounts) {
	n.EnergyKcal += other.EnergyKcal
	n.ProteinG += other.ProteinG
	n.LipidG += other.LipidG
	n.CarbohydrateG += other.CarbohydrateG
	n.FiberG += other.FiberG
}

// ByNutrient returns the scaled amount for one of the goal-able nutrient keys.
func (n NutrientAmounts) ByNutrient(key string) float64 {
	switch key {
	case NutrientEnergy:
		return n.EnergyKcal
	case NutrientProtein:
		return n.ProteinG
	case NutrientLipid:
		return n.LipidG
	case NutrientCarb:
		return n.CarbohydrateG
	case NutrientFiber:
		return n.FiberG
	}
	return 0
}
