package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_AccessTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken("user-1", "sa@filmforge.dev", "super_administrator")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "super_administrator", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestManager_RejectsWrongType(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	claims, err := m.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestManager_RejectsForeignSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour, time.Hour)
	verifier := NewManager("secret-b", time.Hour, time.Hour)

	token, err := issuer.GenerateAccessToken("user-1", "a@b.c", "actor")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestManager_RejectsExpired(t *testing.T) {
	m := NewManager("test-secret", time.Minute, time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.GenerateAccessToken("user-1", "a@b.c", "actor")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}
