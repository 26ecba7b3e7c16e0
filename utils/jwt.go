package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marcelosanto/telegram-food-boot/config"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateJWT issues an HS256 token for a username, expiring after the
// configured TTL.
func GenerateJWT(username string) (string, error) {
	ttl := time.Duration(config.Cfg.JWT.TTLMinutes) * time.Minute
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(config.Cfg.JWT.Secret))
}

// ParseJWT validates a bearer token and returns the subject username.
func ParseJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.Cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
