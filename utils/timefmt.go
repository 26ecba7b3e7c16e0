package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseClockTime validates an "HH:MM" string with hours in [0,23] and
// minutes in [0,59], returning it normalized to two digits each.
func ParseClockTime(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return "", errors.New("time must be in HH:MM format")
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", errors.New("time must be in HH:MM format")
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", errors.New("time must be in HH:MM format")
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return "", errors.New("time out of range")
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}
