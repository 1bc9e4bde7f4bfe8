package jwt

import (
	"My-Supps-Backend/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService("secret", "MY-SUPPS")
	userID := uuid.NewString()

	token := service.GenerateTokenUser(userID, domain.RoleUser)
	require.NotEmpty(t, token)

	id, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestTokenRejected(t *testing.T) {
	service := NewJWTService("secret", "MY-SUPPS")
	userID := uuid.NewString()

	expired, err := service.GenerateTokenUserWithTTL(userID, domain.RoleUser, -time.Minute)
	require.NoError(t, err)
	_, _, err = service.GetUserIDByToken(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	otherSecret := NewJWTService("other", "MY-SUPPS").GenerateTokenUser(userID, domain.RoleUser)
	_, _, err = service.GetUserIDByToken(otherSecret)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	otherIssuer := NewJWTService("secret", "SOMEONE-ELSE").GenerateTokenUser(userID, domain.RoleUser)
	_, _, err = service.GetUserIDByToken(otherIssuer)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, _, err = service.GetUserIDByToken("garbage")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestEmptySecretRejectsEverything(t *testing.T) {
	service := NewJWTService("", "MY-SUPPS")
	userID := "11111111-1111-1111-1111-111111111111"

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtUserClaim{
		UserID: userID,
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    "MY-SUPPS",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(""))
	require.NoError(t, err)

	id, _, err := service.GetUserIDByToken(forged)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	assert.Empty(t, id)

	_, err = service.GenerateTokenUserWithTTL(userID, domain.RoleUser, time.Hour)
	assert.ErrorIs(t, err, domain.ErrMissingSecret)
}
