package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marromlanches/storefront-backend/pkg/auth"
	"github.com/marromlanches/storefront-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "storefront-test",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	adminID := uuid.New()
	now := time.Now()

	signed, err := auth.MintAccessToken(cfg, now, auth.AccessTokenPayload{
		AdminID: adminID,
		Email:   "owner@example.com",
		Name:    "Owner",
	})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := auth.ParseAccessToken(cfg, signed)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()

	signed, err := auth.MintAccessToken(cfg, time.Now().Add(-2*time.Hour), auth.AccessTokenPayload{
		AdminID: uuid.New(),
		Email:   "owner@example.com",
	})
	require.NoError(t, err)

	_, err = auth.ParseAccessToken(cfg, signed)
	require.Error(t, err)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	signed, err := auth.MintAccessToken(cfg, time.Now(), auth.AccessTokenPayload{
		AdminID: uuid.New(),
		Email:   "owner@example.com",
	})
	require.NoError(t, err)

	other := cfg
	other.Secret = "different-secret"
	_, err = auth.ParseAccessToken(other, signed)
	require.Error(t, err)
}

func TestMintAccessTokenValidation(t *testing.T) {
	cfg := testJWTConfig()

	_, err := auth.MintAccessToken(cfg, time.Now(), auth.AccessTokenPayload{})
	require.Error(t, err)

	noSecret := cfg
	noSecret.Secret = ""
	_, err = auth.MintAccessToken(noSecret, time.Now(), auth.AccessTokenPayload{AdminID: uuid.New()})
	require.Error(t, err)
}
