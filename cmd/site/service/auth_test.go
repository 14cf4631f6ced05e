package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midwaymobile/storage-site/common/config"
	"github.com/midwaymobile/storage-site/common/logger"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	svc, err := NewAuthService(config.AuthConfig{
		AdminUser:     "admin",
		AdminPassword: "letmein",
		TokenTTL:      time.Hour,
	}, NewMemoryTokenStore(), logger.Discard())
	require.NoError(t, err)
	return svc
}

func TestAuthLoginAndVerify(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "letmein")
	require.NoError(t, err)
	assert.Len(t, token, 64) // 32 random bytes hex-encoded

	assert.True(t, svc.Verify(ctx, token))
}

func TestAuthLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthLoginWrongUser(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "root", "letmein")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthVerifyUnknownToken(t *testing.T) {
	svc := newTestAuthService(t)

	assert.False(t, svc.Verify(context.Background(), "deadbeef"))
	assert.False(t, svc.Verify(context.Background(), ""))
}

func TestAuthLogoutRevokesToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "letmein")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	assert.False(t, svc.Verify(ctx, token))
}

func TestAuthNoPasswordConfigured(t *testing.T) {
	_, err := NewAuthService(config.AuthConfig{AdminUser: "admin"},
		NewMemoryTokenStore(), logger.Discard())
	assert.Error(t, err)
}

func TestMemoryTokenStoreExpiry(t *testing.T) {
	tokens := NewMemoryTokenStore()
	ctx := context.Background()

	require.NoError(t, tokens.Put(ctx, "short-lived", -time.Second))

	ok, err := tokens.Exists(ctx, "short-lived")
	require.NoError(t, err)
	assert.False(t, ok)
}
