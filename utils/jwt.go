package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const roleStaff = "staff"

func GenerateTokens(secret string, userID uint) (string, string, error) {
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_role": roleStaff,
		"id":        userID,
		"exp":       time.Now().Add(15 * time.Minute).Unix(),
	})
	access, err := accessToken.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_role": roleStaff,
		"id":        userID,
		"exp":       time.Now().Add(12 * time.Hour).Unix(),
	})
	refresh, err := refreshToken.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func ValidateToken(secret, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("invalid or missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, errors.New("token has expired")
	}

	return claims, nil
}

func RefreshTokens(secret, oldRefreshToken string) (string, string, error) {
	claims, err := ValidateToken(secret, oldRefreshToken)
	if err != nil {
		return "", "", fmt.Errorf("invalid refresh token: %v", err)
	}

	userID, ok := claims["id"].(float64)
	if !ok {
		return "", "", errors.New("id not found in refresh token")
	}

	return GenerateTokens(secret, uint(userID))
}
