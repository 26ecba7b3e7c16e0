package controllers

import "github.com/marcelosanto/telegram-food-boot/services"

var (
	foodTable  *services.FoodTable
	mealSvc    *services.MealService
	summarySvc *services.SummaryService
	notifier   *services.NotifierService
)

// Init wires the shared collaborators. Called once from main before the
// router starts serving.
func Init(foods *services.FoodTable, n *services.NotifierService) {
	foodTable = foods
	mealSvc = services.NewMealService(foods)
	summarySvc = services.NewSummaryService(mealSvc, foods)
	notifier = n
}
