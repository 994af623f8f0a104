package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cure-password")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cure-password", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.True(t, CheckPassword(hash, "s3cure-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
}
