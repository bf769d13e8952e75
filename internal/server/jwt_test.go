package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edivaldojuniordev/matrizcognis/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestJWT_RoundTrip(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "Cynthia Borelli", "member")
	require.NoError(t, err)

	identity, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "Cynthia Borelli", identity.Name)
	assert.Equal(t, "member", identity.Role)
}

func TestJWT_RejectsEmptyAndGarbage(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWT_RejectsWrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken(uuid.New(), "Ana", "member")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_RejectsExpired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", ExpirationHours: 1}
	now := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		UserID: uuid.New(),
		Name:   "Ana",
		Role:   "member",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	_, err = NewJWTService(cfg).ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWT_RejectsUnexpectedSigningMethod(t *testing.T) {
	// alg=none token
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"name": "x"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = testJWTService().ValidateToken(signed)
	assert.Error(t, err)
}
