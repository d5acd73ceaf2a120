package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vms/config"
	"vms/internal/domain/entity"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.SecretKey.Reset = "test-reset-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID, entity.RoleHost.String())
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, entity.RoleHost.String(), accessClaims.Role)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_ValidateToken_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService(t)

	other := newTestJWTService(t)
	other.accessSecret = "some-other-secret"
	other.refreshSecret = "another-other-secret"

	accessToken, _, err := other.GenerateTokens(uuid.New(), entity.RoleAdmin.String())
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_ResetTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateResetToken("grace@example.com")
	require.NoError(t, err)

	email, err := svc.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", email)
}

func TestJWTService_ValidateResetToken_RejectsOtherTokenTypes(t *testing.T) {
	svc := newTestJWTService(t)
	svc.resetSecret = svc.accessSecret

	accessToken, _, err := svc.GenerateTokens(uuid.New(), entity.RoleHost.String())
	require.NoError(t, err)

	_, err = svc.ValidateResetToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_ResetTokenExpires(t *testing.T) {
	svc := newTestJWTService(t)
	svc.resetTTL = -time.Minute

	token, err := svc.GenerateResetToken("grace@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateResetToken(token)
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "a"
	cfg.SecretKey.Refresh = "r"
	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: 48 * time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, svc.GetRefreshTokenDuration())
}
