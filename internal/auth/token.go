package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
)

// Claims are what the API needs to authorize a request: who is calling and
// with which role.
type Claims struct {
	UserID int64
	Role   domain.Role
}

// NewAccessToken signs an HS256 JWT for the user with the given TTL.
func NewAccessToken(secret string, user *domain.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAccessToken validates the signature and expiry and extracts claims.
func ParseAccessToken(secret, tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid claims")
	}
	sub, ok := mc["sub"].(float64)
	if !ok {
		return Claims{}, errors.New("missing subject")
	}
	role, _ := mc["role"].(string)
	return Claims{UserID: int64(sub), Role: domain.Role(role)}, nil
}
