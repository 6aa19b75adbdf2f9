package auth

import (
	"testing"
	"time"

	"warden/config"
	"warden/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Token.AccessTTL = ttl

	return cfg
}

func TestNewJWTService_FailsFastOnMissingConfig(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)

	_, err = NewJWTService(newTestConfig("secret", 0))
	assert.Error(t, err)
}

func TestJWTService_GenerateAccessToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	adminID := uuid.New()
	token, err := svc.GenerateAccessToken(adminID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, adminID.String(), claims.Subject)

	parsedID, err := claims.AdminID()
	require.NoError(t, err)
	assert.Equal(t, adminID, parsedID)
}

func TestJWTService_ValidateToken_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer-secret", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("other-secret", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsExpired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", -time.Minute))
	require.Error(t, err)
	assert.Nil(t, svc)

	// A TTL in the past is rejected at construction; build one with a tiny
	// TTL instead and let it lapse.
	svc, err = NewJWTService(newTestConfig("test-secret", time.Millisecond))
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
