package bot

import (
	"math"
	"strconv"
	"strings"
)

// parsePositiveNumber validates numeric input. The re-prompt distinguishes
// "not a number" from "not positive"; either way the state does not advance.
func parsePositiveNumber(chatID int64, text string) (float64, []Reply) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	// ParseFloat also accepts spellings like "nan" and "+Inf"
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, replyText(chatID, msgInvalidNumber)
	}
	if value <= 0 {
		return 0, replyText(chatID, msgPositiveNumber)
	}
	return value, nil
}
