package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Generate("user-123")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := NewTokenManager("test-secret").Validate("not-a-token")
	assert.Error(t, err)
}
