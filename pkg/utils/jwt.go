package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateRefreshToken creates a signed refresh token for the user.
func GenerateRefreshToken(userID uint, secret string, days int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Duration(days) * 24 * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyRefreshToken parses and validates a refresh token, returning the user ID.
func VerifyRefreshToken(tokenStr, secret string) (uint, error) {
	t, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !t.Valid {
		return 0, errors.New("invalid refresh token")
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	idVal, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("user_id claim missing")
	}
	return uint(idVal), nil
}
