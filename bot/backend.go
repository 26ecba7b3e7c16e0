package bot

import (
	"context"
	"errors"
)

// Errors the engine distinguishes when a backend call fails. Everything else
// is reported to the user as a generic failure.
var (
	ErrUnauthorized  = errors.New("missing or invalid credential")
	ErrUsernameTaken = errors.New("username already exists")
	ErrBadRequest    = errors.New("backend rejected the request")
)

// CalculationRequest mirrors the POST /calculations payload. Optional fields
// stay nil/empty when the calculator does not collect them.
type CalculationRequest struct {
	CalcType      string
	Weight        float64
	Height        *float64
	Age           *float64
	Gender        string
	ActivityLevel string
}

// Backend is the record-keeping side the dialogue engine talks to. Each
// completed flow makes exactly one of these calls. Methods returning a string
// hand back the confirmation message to relay to the user.
type Backend interface {
	SignUp(ctx context.Context, chatID int64, username, password string) error
	Login(ctx context.Context, chatID int64, username, password string) error
	// Authenticated reports whether a usable credential is stored for a chat.
	Authenticated(chatID int64) bool

	CreateMeal(ctx context.Context, chatID int64, mealType string, foodID int, quantityGrams float64) (string, error)
	SetGoal(ctx context.Context, chatID int64, nutrient string, value float64) (string, error)
	AddWater(ctx context.Context, chatID int64, amountML float64) (string, error)
	Calculate(ctx context.Context, chatID int64, req CalculationRequest) (string, error)
	SetReminder(ctx context.Context, chatID int64, reminderType, timeOfDay string) (string, error)
	DailySummary(ctx context.Context, chatID int64) (string, error)
	TipOfTheDay(ctx context.Context) (string, error)
}
