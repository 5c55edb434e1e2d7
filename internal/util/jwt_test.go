package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("7f9c7c1e-0000-4000-8000-000000000001", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "7f9c7c1e-0000-4000-8000-000000000001", claims.SessionID)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("sid", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "other")
	assert.Error(t, err)
}

func TestSessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken("sid", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "secret")
	assert.Error(t, err)
}
