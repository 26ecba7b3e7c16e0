package bot

import (
	"context"

	"github.com/marcelosanto/telegram-food-boot/models"
)

var nutrientChoices = []Choice{
	{Label: "Calorias (kcal)", Data: tokNutrient + ":" + models.NutrientEnergy},
	{Label: "Proteínas (g)", Data: tokNutrient + ":" + models.NutrientProtein},
	{Label: "Lipídios (g)", Data: tokNutrient + ":" + models.NutrientLipid},
	{Label: "Carboidratos (g)", Data: tokNutrient + ":" + models.NutrientCarb},
	{Label: "Fibras (g)", Data: tokNutrient + ":" + models.NutrientFiber},
}

func (e *Engine) beginGoalFlow(chatID int64) []Reply {
	e.begin(chatID, FlowGoal, StateSelectNutrient)
	return replyChoices(chatID, msgSelectNutrient, withCancel(nutrientChoices))
}

func (e *Engine) stepGoal(ctx context.Context, sess *Session, ev Event) []Reply {
	switch sess.State {
	case StateSelectNutrient:
		prefix, value := splitToken(ev.Data)
		if ev.Type != EventChoice || prefix != tokNutrient || !models.ValidNutrient(value) {
			return replyChoices(sess.ChatID, msgSelectNutrient, withCancel(nutrientChoices))
		}
		sess.Fields["nutrient"] = value
		sess.State = StateEnterGoalValue
		return replyText(sess.ChatID, "📈 Digite a meta para *"+value+"*:")

	case StateEnterGoalValue:
		value, errReply := parsePositiveNumber(sess.ChatID, ev.Text)
		if errReply != nil {
			return errReply
		}
		message, err := e.backend.SetGoal(ctx, sess.ChatID, sess.Fields["nutrient"], value)
		if err != nil {
			return e.failure(sess.ChatID, "upsert_goal", err)
		}
		e.clear(sess.ChatID)
		return replyText(sess.ChatID, message)
	}
	return nil
}

func (e *Engine) beginWaterFlow(chatID int64) []Reply {
	e.begin(chatID, FlowWater, StateEnterWaterAmount)
	return replyText(chatID, msgEnterWater)
}

func (e *Engine) stepWater(ctx context.Context, sess *Session, ev Event) []Reply {
	amount, errReply := parsePositiveNumber(sess.ChatID, ev.Text)
	if errReply != nil {
		return errReply
	}
	message, err := e.backend.AddWater(ctx, sess.ChatID, amount)
	if err != nil {
		return e.failure(sess.ChatID, "insert_water", err)
	}
	e.clear(sess.ChatID)
	return replyText(sess.ChatID, message)
}
