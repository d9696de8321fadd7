package service

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"absensiku_backend/internals/configs"
	userModel "absensiku_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

// GenerateTokenPair membuat access + refresh token untuk user
func GenerateTokenPair(u *userModel.UserModel, now time.Time) (access string, refresh string, err error) {
	accessSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	accessClaims := jwt.MapClaims{
		"user_id":   u.ID.String(),
		"role":      u.Role,
		"full_name": u.FullName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(accessSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	refreshClaims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"typ":     "refresh",
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTTLDefault).Unix(),
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	return access, refresh, nil
}

// ParseRefreshToken memvalidasi refresh token dan mengembalikan user_id claim
func ParseRefreshToken(tokenString string) (string, error) {
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	}); err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	return userID, nil
}
