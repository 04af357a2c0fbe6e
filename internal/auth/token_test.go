package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	user := &domain.User{ID: 7, Role: domain.RoleAdmin}

	token, err := NewAccessToken("secret", user, 15*time.Minute)
	assert.NoError(t, err)

	claims, err := ParseAccessToken("secret", token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	token, err := NewAccessToken("secret", &domain.User{ID: 7}, 15*time.Minute)
	assert.NoError(t, err)

	_, err = ParseAccessToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseAccessToken_Expired(t *testing.T) {
	token, err := NewAccessToken("secret", &domain.User{ID: 7}, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseAccessToken("secret", token)
	assert.Error(t, err)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	_, err := ParseAccessToken("secret", "not-a-jwt")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, VerifyPassword(hash, "secret123"))
	assert.False(t, VerifyPassword(hash, "secret124"))
}
