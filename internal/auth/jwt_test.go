package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTManagerRejectsEmptySecret(t *testing.T) {
	_, err := NewJWTManager("")
	assert.Error(t, err)
}

func TestJWTManagerRoundTrip(t *testing.T) {
	manager, err := NewJWTManager("unit-secret")
	require.NoError(t, err)

	tokenString, err := manager.Generate(42, "user@example.com")
	require.NoError(t, err)

	token, err := manager.Verify(tokenString)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 42, claims["user_id"])
	assert.Equal(t, "user@example.com", claims["email"])
}

func TestJWTManagerRejectsForeignSecret(t *testing.T) {
	issuer, err := NewJWTManager("secret-a")
	require.NoError(t, err)
	verifier, err := NewJWTManager("secret-b")
	require.NoError(t, err)

	tokenString, err := issuer.Generate(1, "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(tokenString)
	assert.Error(t, err)
}
