package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_PasswordHashing(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour)

	t.Run("hash and compare round trip", func(t *testing.T) {
		hash, err := auth.HashPassword("password123")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "password123", hash)

		assert.True(t, auth.ComparePassword("password123", hash))
		assert.False(t, auth.ComparePassword("otherPassword", hash))
	})

	t.Run("new salt per call", func(t *testing.T) {
		h1, err := auth.HashPassword("password123")
		require.NoError(t, err)
		h2, err := auth.HashPassword("password123")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("compare never panics on garbage hash", func(t *testing.T) {
		assert.False(t, auth.ComparePassword("password123", "not-a-bcrypt-hash"))
		assert.False(t, auth.ComparePassword("password123", ""))
	})
}

func TestAuthService_Tokens(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour)

	t.Run("access token carries id and email", func(t *testing.T) {
		token, err := auth.GenerateAccessToken(42, "test@example.com")
		require.NoError(t, err)

		claims, err := auth.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "test@example.com", claims.Email)
	})

	t.Run("refresh token carries id only", func(t *testing.T) {
		token, err := auth.GenerateRefreshToken(42)
		require.NoError(t, err)

		claims, err := auth.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Empty(t, claims.Email)
	})

	t.Run("wrong secret fails verification", func(t *testing.T) {
		other := NewAuthService("other-secret", time.Hour)
		token, err := other.GenerateAccessToken(42, "test@example.com")
		require.NoError(t, err)

		_, err = auth.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed token fails verification", func(t *testing.T) {
		_, err := auth.VerifyToken("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token fails verification", func(t *testing.T) {
		expired := NewAuthService("test-secret", -time.Minute)
		token, err := expired.GenerateAccessToken(42, "test@example.com")
		require.NoError(t, err)

		_, err = expired.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
