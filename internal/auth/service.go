package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/marromlanches/storefront-backend/pkg/auth"
	"github.com/marromlanches/storefront-backend/pkg/config"
	"github.com/marromlanches/storefront-backend/pkg/db/models"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/logger"
	"github.com/marromlanches/storefront-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

type adminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

type rateLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

type service struct {
	admins  adminRepository
	limiter rateLimiter
	jwtCfg  config.JWTConfig
	rlCfg   config.AuthRateLimitConfig
	logg    *logger.Logger
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	AdminRepo   adminRepository
	RateLimiter rateLimiter
	JWTConfig   config.JWTConfig
	RateLimit   config.AuthRateLimitConfig
	Logger      *logger.Logger
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.AdminRepo == nil {
		return nil, fmt.Errorf("admin repository is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		admins:  params.AdminRepo,
		limiter: params.RateLimiter,
		jwtCfg:  params.JWTConfig,
		rlCfg:   params.RateLimit,
		logg:    params.Logger,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	if err := s.checkRateLimits(ctx, email, req.ClientIP); err != nil {
		return nil, err
	}

	admin, err := s.authenticate(ctx, email, req.Password)
	if err != nil {
		return nil, err
	}

	name := ""
	if admin.DisplayName != nil {
		name = *admin.DisplayName
	}

	now := time.Now().UTC()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		AdminID: admin.ID,
		Email:   admin.Email,
		Name:    name,
		JTI:     uuid.NewString(),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	logCtx := s.logg.WithFields(ctx, map[string]any{"admin_id": admin.ID.String()})
	s.logg.Info(logCtx, "admin logged in")

	return &LoginResponse{
		AccessToken: token,
		ExpiresIn:   s.jwtCfg.ExpirationMinutes * 60,
		Admin: AdminProfile{
			ID:    admin.ID,
			Email: admin.Email,
			Name:  name,
		},
	}, nil
}

// checkRateLimits counts attempts per email and per caller address. A nil
// limiter disables throttling; a limiter failure does not block logins.
func (s *service) checkRateLimits(ctx context.Context, email, clientIP string) error {
	if s.limiter == nil {
		return nil
	}

	scopes := []struct {
		scope string
		limit int64
	}{
		{scope: "login:email:" + email, limit: int64(s.rlCfg.LoginEmailLimit)},
	}
	if clientIP != "" {
		scopes = append(scopes, struct {
			scope string
			limit int64
		}{scope: "login:ip:" + clientIP, limit: int64(s.rlCfg.LoginIPLimit)})
	}

	for _, entry := range scopes {
		if entry.limit <= 0 {
			continue
		}
		allowed, _, err := s.limiter.FixedWindowAllow(ctx, entry.scope, entry.limit, s.rlCfg.LoginWindow)
		if err != nil {
			s.logg.Warn(ctx, "rate limiter unavailable, allowing login attempt")
			return nil
		}
		if !allowed {
			return pkgerrors.New(pkgerrors.CodeRateLimit, "too many login attempts, try again later")
		}
	}
	return nil
}

func (s *service) authenticate(ctx context.Context, email, password string) (*models.AdminUser, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup admin")
	}

	valid, err := security.VerifyPassword(password, admin.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return admin, nil
}
