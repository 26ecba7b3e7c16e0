package bot

import "strings"

// EventType is the closed set of inbound event shapes the engine accepts.
// The delivery adapter decodes raw updates into exactly one of these.
type EventType int

const (
	// EventCommand is a slash command ("/meals" arrives as Command "meals").
	EventCommand EventType = iota
	// EventChoice is a button press; Data carries a "prefix:value" token.
	EventChoice
	// EventText is free-form text typed into the current step.
	EventText
)

// Commands the engine understands.
const (
	CmdStart        = "start"
	CmdSignup       = "signup"
	CmdLogin        = "login"
	CmdMeals        = "meals"
	CmdGoals        = "goals"
	CmdWater        = "water"
	CmdCalculations = "calculations"
	CmdReminders    = "reminders"
	CmdSummary      = "summary"
	CmdTips         = "tips"
	CmdCancel       = "cancel"
)

// Choice token prefixes.
const (
	tokMealType   = "meal_type"
	tokFood       = "food"
	tokFoodSearch = "food_search"
	tokNutrient   = "nutrient"
	tokCalc       = "calc"
	tokGender     = "gender"
	tokActivity   = "activity"
	tokReminder   = "reminder"
	tokConfirm    = "confirm"
	tokCancel     = "cancel"
)

// Event is one inbound user interaction.
type Event struct {
	ChatID  int64
	Type    EventType
	Command string // for EventCommand
	Data    string // for EventChoice
	Text    string // for EventText
}

// splitToken breaks a "prefix:value" choice token.
func splitToken(data string) (prefix, value string) {
	prefix, value, _ = strings.Cut(data, ":")
	return prefix, value
}

// Choice is one button offered with a prompt.
type Choice struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// Reply is one outbound prompt or confirmation.
type Reply struct {
	ChatID  int64    `json:"chat_id"`
	Text    string   `json:"text"`
	Choices []Choice `json:"choices,omitempty"`
}
