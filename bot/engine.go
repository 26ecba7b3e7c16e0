package bot

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/marcelosanto/telegram-food-boot/services"
)

// Engine is the session dialogue engine: one finite state machine per active
// user, walking guided flows and making exactly one backend write per
// completed flow.
//
// The session map is the only state shared across users; steps within one
// user's session arrive one at a time.
type Engine struct {
	mu       sync.Mutex
	sessions map[int64]*Session

	backend Backend
	foods   *services.FoodTable
}

func NewEngine(backend Backend, foods *services.FoodTable) *Engine {
	return &Engine{
		sessions: make(map[int64]*Session),
		backend:  backend,
		foods:    foods,
	}
}

func (e *Engine) session(chatID int64) *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessions[chatID]
}

// begin replaces any stale session for the chat with a fresh one.
func (e *Engine) begin(chatID int64, flow FlowKind, state State) *Session {
	sess := newSession(chatID, flow, state)
	e.mu.Lock()
	e.sessions[chatID] = sess
	e.mu.Unlock()
	return sess
}

func (e *Engine) clear(chatID int64) {
	e.mu.Lock()
	delete(e.sessions, chatID)
	e.mu.Unlock()
}

// Handle processes one inbound event and returns the outbound replies.
func (e *Engine) Handle(ctx context.Context, ev Event) []Reply {
	switch ev.Type {
	case EventCommand:
		return e.handleCommand(ctx, ev)
	case EventChoice:
		switch prefix, _ := splitToken(ev.Data); prefix {
		case tokCancel:
			return e.cancel(ev.ChatID)
		case CmdSignup:
			e.begin(ev.ChatID, FlowSignup, StateEnterUsername)
			return replyText(ev.ChatID, msgEnterUsername)
		case CmdLogin:
			e.begin(ev.ChatID, FlowLogin, StateEnterUsername)
			return replyText(ev.ChatID, msgEnterUsername)
		}
		sess := e.session(ev.ChatID)
		if sess == nil {
			return nil // stale button, no active flow
		}
		return e.step(ctx, sess, ev)
	case EventText:
		sess := e.session(ev.ChatID)
		if sess == nil {
			return nil
		}
		return e.step(ctx, sess, ev)
	}
	return nil
}

func (e *Engine) handleCommand(ctx context.Context, ev Event) []Reply {
	switch ev.Command {
	case CmdStart:
		e.clear(ev.ChatID)
		return e.startReply(ev.ChatID)
	case CmdCancel:
		return e.cancel(ev.ChatID)
	case CmdSignup:
		e.begin(ev.ChatID, FlowSignup, StateEnterUsername)
		return replyText(ev.ChatID, msgEnterUsername)
	case CmdLogin:
		e.begin(ev.ChatID, FlowLogin, StateEnterUsername)
		return replyText(ev.ChatID, msgEnterUsername)
	case CmdTips:
		tip, err := e.backend.TipOfTheDay(ctx)
		if err != nil {
			return replyText(ev.ChatID, msgTipUnavailable)
		}
		return replyText(ev.ChatID, "Dica do dia: "+tip)
	case CmdSummary:
		if !e.backend.Authenticated(ev.ChatID) {
			return replyText(ev.ChatID, msgNeedLogin)
		}
		text, err := e.backend.DailySummary(ctx, ev.ChatID)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				return replyText(ev.ChatID, msgNeedLogin)
			}
			log.WithFields(log.Fields{"chat_id": ev.ChatID, "op": "summary"}).
				WithError(err).Error("backend call failed")
			return replyText(ev.ChatID, msgSummaryError)
		}
		return replyText(ev.ChatID, text)
	case CmdMeals:
		return e.guard(ev.ChatID, func() []Reply { return e.beginMealFlow(ev.ChatID) })
	case CmdGoals:
		return e.guard(ev.ChatID, func() []Reply { return e.beginGoalFlow(ev.ChatID) })
	case CmdWater:
		return e.guard(ev.ChatID, func() []Reply { return e.beginWaterFlow(ev.ChatID) })
	case CmdCalculations:
		return e.guard(ev.ChatID, func() []Reply { return e.beginCalcMenu(ev.ChatID) })
	case CmdReminders:
		return e.guard(ev.ChatID, func() []Reply { return e.beginReminderFlow(ev.ChatID) })
	}
	return nil
}

// guard runs a flow entry only for authenticated chats.
func (e *Engine) guard(chatID int64, enter func() []Reply) []Reply {
	if !e.backend.Authenticated(chatID) {
		e.clear(chatID)
		return replyText(chatID, msgNeedLogin)
	}
	return enter()
}

// step routes an event to the handler for the session's current state.
func (e *Engine) step(ctx context.Context, sess *Session, ev Event) []Reply {
	switch sess.State {
	case StateSelectMealType, StateSelectFood, StateSearchFood, StateEnterQuantity, StateConfirmMeal:
		return e.stepMeal(ctx, sess, ev)
	case StateSelectNutrient, StateEnterGoalValue:
		return e.stepGoal(ctx, sess, ev)
	case StateEnterWaterAmount:
		return e.stepWater(ctx, sess, ev)
	case StateSelectCalculator, StateEnterWeight, StateEnterHeight, StateEnterAge, StateSelectGender, StateSelectActivity:
		return e.stepCalculator(ctx, sess, ev)
	case StateSelectReminderType, StateEnterReminderTime:
		return e.stepReminder(ctx, sess, ev)
	case StateEnterUsername, StateEnterPassword:
		return e.stepCredentials(ctx, sess, ev)
	}
	return nil
}

func (e *Engine) cancel(chatID int64) []Reply {
	sess := e.session(chatID)
	e.clear(chatID)
	if sess != nil && sess.Flow == FlowMeal {
		return replyText(chatID, msgMealCancelled)
	}
	return replyText(chatID, msgCancelled)
}

func (e *Engine) startReply(chatID int64) []Reply {
	text := msgWelcomeAnon
	if e.backend.Authenticated(chatID) {
		text = msgWelcomeAuthed
	}
	return []Reply{{
		ChatID: chatID,
		Text:   text,
		Choices: []Choice{
			{Label: "Cadastrar", Data: "signup"},
			{Label: "Login", Data: "login"},
		},
	}}
}

// failure ends the flow and reports the error: auth problems get the login
// hint, everything else the generic backend message.
func (e *Engine) failure(chatID int64, op string, err error) []Reply {
	e.clear(chatID)
	if errors.Is(err, ErrUnauthorized) {
		return replyText(chatID, msgNeedLogin)
	}
	log.WithFields(log.Fields{"chat_id": chatID, "op": op}).
		WithError(err).Error("backend call failed")
	return replyText(chatID, msgAPIError)
}

func replyText(chatID int64, text string) []Reply {
	return []Reply{{ChatID: chatID, Text: text}}
}

func replyChoices(chatID int64, text string, choices []Choice) []Reply {
	return []Reply{{ChatID: chatID, Text: text, Choices: choices}}
}

func withCancel(choices []Choice) []Choice {
	return append(choices, Choice{Label: "❌ Cancelar", Data: tokCancel})
}
