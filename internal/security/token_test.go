package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecitools-backend/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret")

	t.Run("access token carries identity and role", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(42, "ana@example.com", domain.UserRoleAdmin)
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int32(42), claims.UserID)
		assert.Equal(t, "ana@example.com", claims.Email)
		assert.Equal(t, domain.UserRoleAdmin, claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.Type)
		assert.Equal(t, "vecitools", claims.Issuer)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("refresh token is typed as refresh", func(t *testing.T) {
		token, err := manager.GenerateRefreshToken(42, "ana@example.com")
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
	})

	t.Run("every token gets a unique jti", func(t *testing.T) {
		a, err := manager.GenerateAccessToken(42, "ana@example.com", domain.UserRoleUser)
		require.NoError(t, err)
		b, err := manager.GenerateAccessToken(42, "ana@example.com", domain.UserRoleUser)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestTokenValidationFailures(t *testing.T) {
	manager := NewTokenManager("test-secret")

	t.Run("a token signed with another secret is invalid", func(t *testing.T) {
		other := NewTokenManager("other-secret")
		token, err := other.GenerateAccessToken(42, "ana@example.com", domain.UserRoleUser)
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		_, err := manager.ValidateToken("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
