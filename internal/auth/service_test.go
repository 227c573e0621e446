// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gympulse/gympulse/internal/config"
	"github.com/gympulse/gympulse/internal/core"
)

func newTestJWTManager(t *testing.T) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "jwt_private.pem")
	publicPath := filepath.Join(dir, "jwt_public.pem")

	require.NoError(t, GenerateKeyPair(privatePath, publicPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:    privatePath,
		PublicKeyPath:     publicPath,
		AccessTokenExpire: 15 * time.Minute,
		Issuer:            "gympulse-test",
		Audience:          "gympulse-api",
	})
	require.NoError(t, err)

	return manager
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := core.HashPassword("correct horse")
	require.NoError(t, err)

	return NewService(config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
	}, newTestJWTManager(t))
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Login(context.Background(), "admin", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "root", "correct horse")
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestTokenRoundTrip(t *testing.T) {
	manager := newTestJWTManager(t)

	token, err := manager.CreateAccessToken("admin")
	require.NoError(t, err)

	claims, err := manager.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := newTestJWTManager(t)

	_, err := manager.VerifyAccessToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuing := newTestJWTManager(t)
	verifying := newTestJWTManager(t)

	token, err := issuing.CreateAccessToken("admin")
	require.NoError(t, err)

	_, err = verifying.VerifyAccessToken(context.Background(), token)
	assert.Error(t, err)
}
