package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"practicas_backend/internals/configs"
	"practicas_backend/internals/features/users/auth/model"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// IssueAccessToken firma el access token con la identidad que consumen los
// middlewares: user_id, role y entity_id.
func IssueAccessToken(u *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.UserID.String(),
		"role":    u.UserRole,
		"exp":     time.Now().Add(AccessTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	if u.UserEntityID != nil {
		claims["entity_id"] = u.UserEntityID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken firma con el secreto de refresh; solo lleva user_id.
func IssueRefreshToken(u *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.UserID.String(),
		"exp":     time.Now().Add(RefreshTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken valida el refresh token y devuelve el user_id.
func ParseRefreshToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return "", err
	}
	userID, _ := claims["user_id"].(string)
	return userID, nil
}
