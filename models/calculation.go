package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CalcIMC  = "IMC"
	CalcTMB  = "TMB"
	CalcTDEE = "TDEE"
	CalcFat  = "Fat Percentage"
)

// Calculation stores the outcome of one body-metric calculator run.
// Append-only; summaries read back the latest ones.
type Calculation struct {
	gorm.Model
	UserID    uint    `gorm:"index;not null"`
	CalcType  string  `gorm:"not null"`
	Result    float64 `gorm:"not null"`
	Details   string  // free text describing the inputs
	Timestamp time.Time
}
