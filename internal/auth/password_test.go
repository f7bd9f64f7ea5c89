package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")

	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", hash)

	assert.True(t, CheckPassword(hash, "pw123456"))
	assert.False(t, CheckPassword(hash, "wrongpass"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordEmptyHashUsesPlaceholder(t *testing.T) {
	// The placeholder comparison must run and fail; its preimage is unknown.
	assert.False(t, CheckPassword("", "pw123456"))
	assert.False(t, CheckPassword("", ""))
}

func TestHashCostClamped(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "pw123456"))
}
