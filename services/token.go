package services

import (
	"fmt"
	"time"

	"stayhub/config"
	"stayhub/errors"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserID uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))

// TokenExpiryMinutes is the lifetime of an issued access token.
const TokenExpiryMinutes = 60 * 24 * 3

// GenerateToken signs an HS256 access token for the given identity.
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, time.Time, error) {
	expiry := time.Now().Add(time.Minute * time.Duration(expiryMinutes))
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiry.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiry, nil
}

// ParseToken verifies a token signature and expiry and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token is not valid", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token is not valid", nil)
	}
	return claims, nil
}

// GetUserIDFromToken extracts the user id and role from a verified token.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return 0, 0, err
	}
	return claims.UserInfo.UserID, claims.UserInfo.Role, nil
}
