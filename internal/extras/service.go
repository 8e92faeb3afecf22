package extras

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/pkg/db"
	"github.com/marromlanches/storefront-backend/pkg/db/models"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/money"
)

// CreateInput carries the fields accepted when creating an add-on.
type CreateInput struct {
	Name   string
	Price  decimal.Decimal
	Active *bool
}

// UpdateInput carries the patchable add-on fields. Nil fields are untouched.
type UpdateInput struct {
	Name   *string
	Price  *decimal.Decimal
	Active *bool
}

// Service exposes add-on management.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Extra, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Extra, error)
	List(ctx context.Context, activeOnly bool) ([]models.Extra, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Extra, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService builds an extras service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("extras repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Extra, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "extra name is required")
	}
	if money.IsNegative(input.Price) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "extra price cannot be negative")
	}

	extra := &models.Extra{
		ID:     uuid.New(),
		Name:   name,
		Price:  money.Round2(input.Price),
		Active: true,
	}
	if input.Active != nil {
		extra.Active = *input.Active
	}

	created, err := s.repo.Create(ctx, extra)
	if err != nil {
		if db.IsUniqueViolation(err, "ux_extras_name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "extra name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create extra")
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Extra, error) {
	extra, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "extra not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load extra")
	}
	return extra, nil
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]models.Extra, error) {
	rows, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list extras")
	}
	return rows, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Extra, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "extra name cannot be empty")
		}
		updates["name"] = name
	}
	if input.Price != nil {
		if money.IsNegative(*input.Price) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "extra price cannot be negative")
		}
		updates["price"] = money.Round2(*input.Price)
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if db.IsUniqueViolation(err, "ux_extras_name") {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "extra name already exists")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update extra")
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the add-on. Order item extras keep their captured prices.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete extra")
	}
	return nil
}
