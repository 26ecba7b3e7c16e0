package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcelosanto/telegram-food-boot/models"
	"github.com/marcelosanto/telegram-food-boot/utils"
)

// SummaryMeal is one meal entry expanded with its scaled nutrients.
type SummaryMeal struct {
	MealType    string                 `json:"meal_type"`
	Description string                 `json:"description"`
	Quantity    float64                `json:"quantity"`
	Time        string                 `json:"time"`
	Nutrients   models.NutrientAmounts `json:"nutrients"`
}

// SummaryGoal is the progress against one nutrient target.
type SummaryGoal struct {
	Current    float64 `json:"current"`
	Goal       float64 `json:"goal"`
	Percentage float64 `json:"percentage"`
}

// SummaryCalculation is one recent calculator result.
type SummaryCalculation struct {
	Type    string  `json:"type"`
	Result  float64 `json:"result"`
	Details string  `json:"details"`
}

// DailySummary aggregates one user's day: meals with nutrient totals, goal
// progress, water total and the last two calculations, plus a rendered text.
type DailySummary struct {
	UserID       uint                   `json:"user_id"`
	Date         string                 `json:"date"`
	Text         string                 `json:"text"`
	Meals        []SummaryMeal          `json:"meals"`
	Totals       models.NutrientAmounts `json:"totals"`
	Goals        map[string]SummaryGoal `json:"goals"`
	Water        float64                `json:"water"`
	Calculations []SummaryCalculation   `json:"calculations"`
}

type SummaryService struct {
	meals *MealService
	foods *FoodTable
}

func NewSummaryService(meals *MealService, foods *FoodTable) *SummaryService {
	return &SummaryService{meals: meals, foods: foods}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func nutrientLabel(key string) string {
	if key == models.NutrientEnergy {
		return "Calorias (kcal)"
	}
	return strings.Replace(key, "_g", " (g)", 1)
}

// BuildDailySummary assembles the aggregate for one calendar day.
func (s *SummaryService) BuildDailySummary(userID uint, day time.Time) (*DailySummary, error) {
	date := day.Format(dayFormat)
	summary := &DailySummary{
		UserID: userID,
		Date:   date,
		Goals:  map[string]SummaryGoal{},
	}

	var text strings.Builder
	fmt.Fprintf(&text, "📊 *Resumo Diário (%s)*\n\n", date)

	entries, err := s.meals.MealsOfDay(userID, day)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		text.WriteString("🍽️ *Refeições do Dia*\n")
		for _, entry := range entries {
			food, err := s.foods.Get(entry.FoodID)
			if err != nil {
				continue // entry for a food no longer in the table
			}
			nutrients := utils.ScaleNutrients(food, entry.QuantityGrams)
			summary.Meals = append(summary.Meals, SummaryMeal{
				MealType:    entry.MealType,
				Description: food.Description,
				Quantity:    entry.QuantityGrams,
				Time:        entry.Timestamp.Format("15:04"),
				Nutrients:   nutrients,
			})
			summary.Totals.Add(nutrients)

			fmt.Fprintf(&text, "• *%s* às %s: %s (%.0fg)\n",
				capitalize(entry.MealType), entry.Timestamp.Format("15:04"),
				food.Description, entry.QuantityGrams)
			fmt.Fprintf(&text, "  Calorias: %.1f kcal, Proteínas: %.1fg, Carboidratos: %.1fg, Lipídios: %.1fg, Fibras: %.1fg\n",
				nutrients.EnergyKcal, nutrients.ProteinG, nutrients.CarbohydrateG,
				nutrients.LipidG, nutrients.FiberG)
		}
		text.WriteString("\n*Totais do Dia*\n")
		for _, key := range models.Nutrients {
			fmt.Fprintf(&text, "• %s: *%.1f*\n", nutrientLabel(key), summary.Totals.ByNutrient(key))
		}
	} else {
		text.WriteString("😕 Nenhuma refeição registrada hoje.\n")
	}

	goals, err := ListGoals(userID)
	if err != nil {
		return nil, err
	}
	if len(goals) > 0 {
		text.WriteString("\n🎯 *Progresso das Metas*\n")
		for _, goal := range goals {
			current := summary.Totals.ByNutrient(goal.Nutrient)
			percentage := 0.0
			if goal.TargetValue > 0 {
				percentage = current / goal.TargetValue * 100
			}
			summary.Goals[goal.Nutrient] = SummaryGoal{
				Current:    current,
				Goal:       goal.TargetValue,
				Percentage: percentage,
			}
			fmt.Fprintf(&text, "• %s: *%.1f/%.1f* (%.1f%%)\n",
				nutrientLabel(goal.Nutrient), current, goal.TargetValue, percentage)
		}
	}

	water, err := WaterTotal(userID, day)
	if err != nil {
		return nil, err
	}
	summary.Water = water
	text.WriteString("\n💧 *Consumo de Água*\n")
	fmt.Fprintf(&text, "• Total: *%.0fml*\n", water)

	calcs, err := LatestCalculations(userID, 2)
	if err != nil {
		return nil, err
	}
	if len(calcs) > 0 {
		text.WriteString("\n🧮 *Últimos Cálculos*\n")
		for _, calc := range calcs {
			summary.Calculations = append(summary.Calculations, SummaryCalculation{
				Type:    calc.CalcType,
				Result:  calc.Result,
				Details: calc.Details,
			})
			fmt.Fprintf(&text, "• %s: *%.1f* (%s)\n", calc.CalcType, calc.Result, calc.Details)
		}
	}

	summary.Text = text.String()
	return summary, nil
}
