package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoursport/admin-api/testutils"
)

func TestService_GenerateTokenPair(t *testing.T) {
	cfg := testutils.GetTestConfig()
	service := NewService(cfg, nil)

	access, refresh, err := service.GenerateTokenPair(42)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	t.Run("access token carries short expiry", func(t *testing.T) {
		claims, err := service.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
		assert.Equal(t, cfg.JWT.Issuer, claims.Issuer)
	})

	t.Run("refresh token carries long expiry", func(t *testing.T) {
		claims, err := service.ValidateToken(refresh)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	})

	t.Run("access expiry strictly shorter than refresh expiry", func(t *testing.T) {
		accessClaims, err := service.ValidateToken(access)
		require.NoError(t, err)
		refreshClaims, err := service.ValidateToken(refresh)
		require.NoError(t, err)

		assert.True(t, accessClaims.ExpiresAt.Time.Before(refreshClaims.ExpiresAt.Time))
	})
}

func TestService_ValidateToken(t *testing.T) {
	cfg := testutils.GetTestConfig()
	service := NewService(cfg, nil)

	t.Run("rejects malformed token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-jwt")
		assert.Equal(t, ErrMalformedToken, err)
	})

	t.Run("rejects token signed with a different key", func(t *testing.T) {
		otherCfg := testutils.GetTestConfig()
		otherCfg.JWT.SecretKey = "another-secret-key-32-chars!!!!!"
		other := NewService(otherCfg, nil)

		access, _, err := other.GenerateTokenPair(1)
		require.NoError(t, err)

		_, err = service.ValidateToken(access)
		require.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expiredCfg := testutils.GetTestConfig()
		expiredCfg.JWT.AccessExpiry = -time.Minute
		expired := NewService(expiredCfg, nil)

		access, _, err := expired.GenerateTokenPair(1)
		require.NoError(t, err)

		_, err = service.ValidateToken(access)
		assert.Equal(t, ErrExpiredToken, err)
	})
}

func TestService_Refresh(t *testing.T) {
	cfg := testutils.GetTestConfig()
	service := NewService(cfg, nil)

	_, refresh, err := service.GenerateTokenPair(7)
	require.NoError(t, err)

	t.Run("issues a new pair from a refresh token", func(t *testing.T) {
		newAccess, newRefresh, err := service.Refresh(refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)

		claims, err := service.ValidateToken(newAccess)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
	})

	t.Run("rejects access token in place of refresh token", func(t *testing.T) {
		access, _, err := service.GenerateTokenPair(7)
		require.NoError(t, err)

		_, _, err = service.Refresh(access)
		assert.Equal(t, ErrWrongTokenType, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, _, err := service.Refresh("garbage")
		require.Error(t, err)
	})
}
