package bot

// FlowKind identifies which guided flow a session is walking through.
type FlowKind int

const (
	FlowNone FlowKind = iota
	FlowMeal
	FlowGoal
	FlowWater
	FlowCalcMenu // calculator picked next step
	FlowIMC
	FlowTMB
	FlowTDEE
	FlowFat
	FlowReminder
	FlowSignup
	FlowLogin
)

// State is one step inside a flow. States are shared across flows where the
// prompt is identical (weight/height/age collection).
type State int

const (
	StateNone State = iota

	// meal logging
	StateSelectMealType
	StateSelectFood
	StateSearchFood
	StateEnterQuantity
	StateConfirmMeal

	// goal setting
	StateSelectNutrient
	StateEnterGoalValue

	// water logging
	StateEnterWaterAmount

	// calculators
	StateSelectCalculator
	StateEnterWeight
	StateEnterHeight
	StateEnterAge
	StateSelectGender
	StateSelectActivity

	// reminders
	StateSelectReminderType
	StateEnterReminderTime

	// signup / login
	StateEnterUsername
	StateEnterPassword
)

// Session is the in-progress state of one user's active flow. Ephemeral:
// created on flow entry, dropped on completion, cancellation or restart.
type Session struct {
	ChatID int64
	Flow   FlowKind
	State  State
	Fields map[string]string
}

func newSession(chatID int64, flow FlowKind, state State) *Session {
	return &Session{
		ChatID: chatID,
		Flow:   flow,
		State:  state,
		Fields: make(map[string]string),
	}
}
