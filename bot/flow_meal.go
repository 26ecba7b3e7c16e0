package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/marcelosanto/telegram-food-boot/models"
)

var mealTypeChoices = []Choice{
	{Label: "☕ Café da manhã", Data: tokMealType + ":" + models.MealBreakfast},
	{Label: "🍛 Almoço", Data: tokMealType + ":" + models.MealLunch},
	{Label: "🍎 Lanche", Data: tokMealType + ":" + models.MealSnack},
	{Label: "🍽️ Jantar", Data: tokMealType + ":" + models.MealDinner},
	{Label: "🌙 Ceia", Data: tokMealType + ":" + models.MealSupper},
}

func (e *Engine) beginMealFlow(chatID int64) []Reply {
	e.begin(chatID, FlowMeal, StateSelectMealType)
	return replyChoices(chatID, msgSelectMealType, withCancel(mealTypeChoices))
}

func (e *Engine) stepMeal(ctx context.Context, sess *Session, ev Event) []Reply {
	switch sess.State {
	case StateSelectMealType:
		prefix, value := splitToken(ev.Data)
		if ev.Type != EventChoice || prefix != tokMealType || !models.ValidMealType(value) {
			return replyChoices(sess.ChatID, msgSelectMealType, withCancel(mealTypeChoices))
		}
		sess.Fields["meal_type"] = value
		sess.State = StateSelectFood
		return e.promptFoodList(sess.ChatID, e.foodChoices(""))

	case StateSelectFood:
		if ev.Type == EventText {
			// free text here is a search term
			return e.searchFoods(sess, ev.Text)
		}
		prefix, value := splitToken(ev.Data)
		if prefix == tokFoodSearch {
			sess.State = StateSearchFood
			return replyText(sess.ChatID, msgSearchPrompt)
		}
		if prefix != tokFood {
			return e.promptFoodList(sess.ChatID, e.foodChoices(""))
		}
		id, err := strconv.Atoi(value)
		if err != nil {
			return e.promptFoodList(sess.ChatID, e.foodChoices(""))
		}
		if _, err := e.foods.Get(id); err != nil {
			return e.promptFoodList(sess.ChatID, e.foodChoices(""))
		}
		sess.Fields["food_id"] = value
		sess.State = StateEnterQuantity
		return replyText(sess.ChatID, msgEnterQuantity)

	case StateSearchFood:
		if ev.Type != EventText {
			return replyText(sess.ChatID, msgSearchPrompt)
		}
		return e.searchFoods(sess, ev.Text)

	case StateEnterQuantity:
		quantity, errReply := parsePositiveNumber(sess.ChatID, ev.Text)
		if errReply != nil {
			return errReply
		}
		sess.Fields["quantity"] = strconv.FormatFloat(quantity, 'f', -1, 64)
		sess.State = StateConfirmMeal

		foodID, _ := strconv.Atoi(sess.Fields["food_id"])
		food, _ := e.foods.Get(foodID)
		text := fmt.Sprintf("✅ Confirmar: %gg de *%s* para *%s*?\nResponda \"sim\" ou \"não\".",
			quantity, food.Description, sess.Fields["meal_type"])
		return replyChoices(sess.ChatID, text, []Choice{
			{Label: "Sim", Data: tokConfirm + ":yes"},
			{Label: "Não", Data: tokConfirm + ":no"},
		})

	case StateConfirmMeal:
		answer := strings.ToLower(strings.TrimSpace(ev.Text))
		if ev.Type == EventChoice {
			_, answer = splitToken(ev.Data)
		}
		switch answer {
		case "sim", "yes":
			return e.completeMeal(ctx, sess)
		case "não", "nao", "no":
			e.clear(sess.ChatID)
			return replyText(sess.ChatID, msgMealCancelled)
		}
		return replyText(sess.ChatID, "Responda \"sim\" ou \"não\".")
	}
	return nil
}

// completeMeal is the flow's single terminal write.
func (e *Engine) completeMeal(ctx context.Context, sess *Session) []Reply {
	foodID, _ := strconv.Atoi(sess.Fields["food_id"])
	quantity, _ := strconv.ParseFloat(sess.Fields["quantity"], 64)
	mealType := sess.Fields["meal_type"]

	message, err := e.backend.CreateMeal(ctx, sess.ChatID, mealType, foodID, quantity)
	if err != nil {
		return e.failure(sess.ChatID, "create_meal", err)
	}
	e.clear(sess.ChatID)
	return replyText(sess.ChatID, message)
}

func (e *Engine) searchFoods(sess *Session, query string) []Reply {
	matches := e.foods.Search(query)
	if len(matches) == 0 {
		sess.State = StateSearchFood
		return replyText(sess.ChatID, msgNoFoodsFound)
	}

	choices := make([]Choice, 0, len(matches))
	for _, food := range matches {
		choices = append(choices, Choice{
			Label: food.Description,
			Data:  fmt.Sprintf("%s:%d", tokFood, food.ID),
		})
	}
	sess.State = StateSelectFood
	return e.promptFoodList(sess.ChatID, choices)
}

// foodChoices lists the leading table entries; a search query narrows them.
func (e *Engine) foodChoices(query string) []Choice {
	records := e.foods.All()
	if query != "" {
		records = e.foods.Search(query)
	}
	var choices []Choice
	for _, food := range records {
		choices = append(choices, Choice{
			Label: food.Description,
			Data:  fmt.Sprintf("%s:%d", tokFood, food.ID),
		})
		if len(choices) == 10 {
			break
		}
	}
	return choices
}

func (e *Engine) promptFoodList(chatID int64, choices []Choice) []Reply {
	choices = append(choices, Choice{Label: "🔍 Buscar", Data: tokFoodSearch})
	return replyChoices(chatID, msgSelectFood, withCancel(choices))
}
