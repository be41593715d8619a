package auth

import (
	"testing"
	"time"

	"github.com/mibarrunto/barrunto-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "barrunto-test",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, cfg.Issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestMintRejectsUnknownRole(t *testing.T) {
	_, err := MintAccessToken(testJWTConfig(), time.Now(), "waiter")
	require.Error(t, err)
}

func TestMintRequiresSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = ""
	_, err := MintAccessToken(cfg, time.Now(), RoleAdmin)
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now().Add(-2*time.Hour), RoleAdmin)
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	require.Error(t, err)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), RoleAdmin)
	require.NoError(t, err)

	other := cfg
	other.Secret = "different"
	_, err = ParseAccessToken(other, token)
	require.Error(t, err)
}
