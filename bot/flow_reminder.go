package bot

import (
	"context"

	"github.com/marcelosanto/telegram-food-boot/models"
	"github.com/marcelosanto/telegram-food-boot/utils"
)

var reminderChoices = []Choice{
	{Label: "🍽️ Refeição", Data: tokReminder + ":" + models.ReminderMeal},
	{Label: "💧 Água", Data: tokReminder + ":" + models.ReminderWater},
}

func (e *Engine) beginReminderFlow(chatID int64) []Reply {
	e.begin(chatID, FlowReminder, StateSelectReminderType)
	return replyChoices(chatID, msgSelectReminderType, withCancel(reminderChoices))
}

func (e *Engine) stepReminder(ctx context.Context, sess *Session, ev Event) []Reply {
	switch sess.State {
	case StateSelectReminderType:
		prefix, value := splitToken(ev.Data)
		if ev.Type != EventChoice || prefix != tokReminder || !models.ValidReminderType(value) {
			return replyChoices(sess.ChatID, msgSelectReminderType, withCancel(reminderChoices))
		}
		sess.Fields["reminder_type"] = value
		sess.State = StateEnterReminderTime
		return replyText(sess.ChatID, msgEnterReminderTime)

	case StateEnterReminderTime:
		timeOfDay, err := utils.ParseClockTime(ev.Text)
		if err != nil {
			// recoverable: same state, user re-prompted
			return replyText(sess.ChatID, msgInvalidTime)
		}
		message, backendErr := e.backend.SetReminder(ctx, sess.ChatID, sess.Fields["reminder_type"], timeOfDay)
		if backendErr != nil {
			return e.failure(sess.ChatID, "upsert_reminder", backendErr)
		}
		e.clear(sess.ChatID)
		return replyText(sess.ChatID, message)
	}
	return nil
}
