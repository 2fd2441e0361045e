package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret-that-is-at-least-32-chars", 60, 60*24)

	t.Run("Access token", func(t *testing.T) {
		tok, err := m.GenerateAccessToken(42, "user@test.com")
		assert.NoError(t, err)

		claims, err := m.ValidateToken(tok)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), claims.UserID)
		assert.Equal(t, "user@test.com", claims.Email)
		assert.Equal(t, TokenTypeAccess, claims.Type)
	})

	t.Run("Refresh token", func(t *testing.T) {
		tok, err := m.GenerateRefreshToken(42, "user@test.com")
		assert.NoError(t, err)

		claims, err := m.ValidateToken(tok)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
	})

	t.Run("Garbage rejected", func(t *testing.T) {
		_, err := m.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Wrong secret rejected", func(t *testing.T) {
		other := NewTokenManager("another-secret-that-is-32-chars-long", 60, 60)
		tok, err := other.GenerateAccessToken(1, "")
		assert.NoError(t, err)

		_, err = m.ValidateToken(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
