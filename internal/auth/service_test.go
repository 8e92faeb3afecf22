package auth

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/pkg/config"
	"github.com/marromlanches/storefront-backend/pkg/db/models"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/logger"
	"github.com/marromlanches/storefront-backend/pkg/security"
)

type stubAdmins struct {
	byEmail map[string]*models.AdminUser
}

func (s *stubAdmins) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	if admin, ok := s.byEmail[email]; ok {
		return admin, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubLimiter struct {
	counts map[string]int64
	limits map[string]int64
}

func (s *stubLimiter) FixedWindowAllow(_ context.Context, scope string, limit int64, _ time.Duration) (bool, int64, error) {
	if s.counts == nil {
		s.counts = map[string]int64{}
	}
	s.counts[scope]++
	return s.counts[scope] <= limit, s.counts[scope], nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "storefront-test",
		ExpirationMinutes: 60,
	}
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8 * 1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newLoginFixture(t *testing.T, limiter rateLimiter) Service {
	t.Helper()

	hash, err := security.HashPassword("correct horse", testPasswordConfig())
	require.NoError(t, err)

	name := "Dona Marrom"
	admins := &stubAdmins{byEmail: map[string]*models.AdminUser{
		"admin@marrom.com.br": {
			ID:           uuid.New(),
			Email:        "admin@marrom.com.br",
			PasswordHash: hash,
			DisplayName:  &name,
		},
	}}

	svc, err := NewService(ServiceParams{
		AdminRepo:   admins,
		RateLimiter: limiter,
		JWTConfig:   testJWTConfig(),
		RateLimit: config.AuthRateLimitConfig{
			LoginWindow:     time.Minute,
			LoginEmailLimit: 3,
			LoginIPLimit:    5,
		},
		Logger: logger.New(logger.Options{ServiceName: "auth-test", Output: io.Discard}),
	})
	require.NoError(t, err)
	return svc
}

func TestLoginSuccess(t *testing.T) {
	svc := newLoginFixture(t, nil)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    " Admin@Marrom.com.br ",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "admin@marrom.com.br", resp.Admin.Email)
	assert.Equal(t, "Dona Marrom", resp.Admin.Name)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newLoginFixture(t, nil)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginRequest{Email: "admin@marrom.com.br", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@marrom.com.br", Password: "correct horse"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())

	_, err = svc.Login(ctx, LoginRequest{Email: "", Password: "correct horse"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())
}

func TestLoginRateLimitedPerEmail(t *testing.T) {
	limiter := &stubLimiter{}
	svc := newLoginFixture(t, limiter)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, LoginRequest{Email: "admin@marrom.com.br", Password: "wrong"})
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())
	}

	_, err := svc.Login(ctx, LoginRequest{Email: "admin@marrom.com.br", Password: "correct horse"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeRateLimit, pkgerrors.As(err).Code())
}

func TestLoginRateLimitedPerIP(t *testing.T) {
	limiter := &stubLimiter{}
	svc := newLoginFixture(t, limiter)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		req := LoginRequest{Email: uuid.NewString() + "@marrom.com.br", Password: "wrong", ClientIP: "10.0.0.9"}
		_, err := svc.Login(ctx, req)
		require.Error(t, err)
	}

	_, err := svc.Login(ctx, LoginRequest{Email: "admin@marrom.com.br", Password: "correct horse", ClientIP: "10.0.0.9"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeRateLimit, pkgerrors.As(err).Code())
}
