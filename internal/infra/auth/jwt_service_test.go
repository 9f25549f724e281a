package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	tokenString, err := svc.GenerateToken(userID, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("issuer-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("other-secret"))
	require.NoError(t, err)

	tokenString, err := issuer.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_TokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.GetTokenDuration())

	cfg := newTestJWTConfig("test-secret")
	cfg.Auth = nil
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultTokenTTL, svc.GetTokenDuration())
}
