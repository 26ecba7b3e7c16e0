package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// UserToken keeps the latest access token issued to a user. One row per user;
// refreshed on every signup/login.
type UserToken struct {
	gorm.Model
	UserID      uint   `gorm:"uniqueIndex;not null"`
	AccessToken string `gorm:"not null"`
	ExpiresAt   time.Time
}
