package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"kursusku_backend/internals/configs"
	"kursusku_backend/internals/features/users/user/model"
)

// TTL access token, override lewat env JWT_TTL_HOURS
const defaultTokenTTLHours = 24

func tokenTTL() time.Duration {
	if v := configs.GetEnv("JWT_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return defaultTokenTTLHours * time.Hour
}

// CreateAccessToken membuat JWT HS256 dengan klaim id, user_name, role, exp.
func CreateAccessToken(user model.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
