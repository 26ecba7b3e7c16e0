package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marcelosanto/telegram-food-boot/config"
	"github.com/marcelosanto/telegram-food-boot/models"
	"github.com/marcelosanto/telegram-food-boot/utils"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

// RegisterUser creates the user row and issues its first access token.
func RegisterUser(username, password string) (string, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") {
			return "", ErrUsernameTaken
		}
		return "", err
	}

	return issueToken(&user)
}

// AuthenticateUser verifies credentials and refreshes the stored token.
func AuthenticateUser(username, password string) (string, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return issueToken(&user)
}

func issueToken(user *models.User) (string, error) {
	token, err := utils.GenerateJWT(user.Username)
	if err != nil {
		return "", err
	}

	record := models.UserToken{
		UserID:      user.ID,
		AccessToken: token,
		ExpiresAt:   time.Now().Add(time.Duration(config.Cfg.JWT.TTLMinutes) * time.Minute),
	}
	err = config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "expires_at", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return "", err
	}

	return token, nil
}

func FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
