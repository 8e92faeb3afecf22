package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/pkg/db/models"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/money"
)

// UpdateInput carries patchable storefront settings. Nil fields are
// untouched.
type UpdateInput struct {
	CompanyName         *string
	Subtitle            *string
	WelcomeTitle        *string
	Address             *string
	Phone               *string
	WhatsApp            *string
	BusinessHours       *string
	DeliveryTime        *string
	FreeDeliveryMinimum *decimal.Decimal
	LogoURL             *string
	IsOpen              *bool
}

// Service exposes the storefront settings singleton.
type Service interface {
	Get(ctx context.Context) (*models.CompanySettings, error)
	Update(ctx context.Context, input UpdateInput) (*models.CompanySettings, error)
	SetOpen(ctx context.Context, open bool) (*models.CompanySettings, error)
}

type service struct {
	repo Repository
}

// NewService builds a settings service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("settings repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context) (*models.CompanySettings, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "settings not configured")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings")
	}
	return row, nil
}

// Update patches the settings row, creating it on first write.
func (s *service) Update(ctx context.Context, input UpdateInput) (*models.CompanySettings, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings")
		}
		row = &models.CompanySettings{IsOpen: true}
	}

	if input.CompanyName != nil {
		name := strings.TrimSpace(*input.CompanyName)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "company name cannot be empty")
		}
		row.CompanyName = name
	}
	if row.CompanyName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "company name is required")
	}
	if input.Subtitle != nil {
		row.Subtitle = input.Subtitle
	}
	if input.WelcomeTitle != nil {
		row.WelcomeTitle = input.WelcomeTitle
	}
	if input.Address != nil {
		row.Address = input.Address
	}
	if input.Phone != nil {
		row.Phone = input.Phone
	}
	if input.WhatsApp != nil {
		row.WhatsApp = input.WhatsApp
	}
	if input.BusinessHours != nil {
		row.BusinessHours = input.BusinessHours
	}
	if input.DeliveryTime != nil {
		row.DeliveryTime = input.DeliveryTime
	}
	if input.FreeDeliveryMinimum != nil {
		if money.IsNegative(*input.FreeDeliveryMinimum) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "free delivery minimum cannot be negative")
		}
		rounded := money.Round2(*input.FreeDeliveryMinimum)
		row.FreeDeliveryMinimum = &rounded
	}
	if input.LogoURL != nil {
		row.LogoURL = input.LogoURL
	}
	if input.IsOpen != nil {
		row.IsOpen = *input.IsOpen
	}

	if row.ID == uuid.Nil {
		row.ID = uuid.New()
		created, err := s.repo.Create(ctx, row)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create settings")
		}
		return created, nil
	}
	if err := s.repo.Update(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update settings")
	}
	return row, nil
}

// SetOpen flips the storefront open flag.
func (s *service) SetOpen(ctx context.Context, open bool) (*models.CompanySettings, error) {
	return s.Update(ctx, UpdateInput{IsOpen: &open})
}
