package delivery

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

// CreateInput carries the fields accepted when creating a delivery area.
type CreateInput struct {
	Name   string
	Fee    decimal.Decimal
	Active *bool
}

// UpdateInput carries the patchable delivery-area fields. Nil fields are
// untouched.
type UpdateInput struct {
	Name   *string
	Fee    *decimal.Decimal
	Active *bool
}

// Service exposes delivery-area management.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.DeliveryArea, error)
	Get(ctx context.Context, id uuid.UUID) (*models.DeliveryArea, error)
	List(ctx context.Context, activeOnly bool) ([]models.DeliveryArea, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.DeliveryArea, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService builds a delivery-area service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("delivery repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.DeliveryArea, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery area name is required")
	}
	if money.IsNegative(input.Fee) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery fee cannot be negative")
	}

	area := &models.DeliveryArea{
		ID:     uuid.New(),
		Name:   name,
		Fee:    money.Round2(input.Fee),
		Active: true,
	}
	if input.Active != nil {
		area.Active = *input.Active
	}

	created, err := s.repo.Create(ctx, area)
	if err != nil {
		if db.IsUniqueViolation(err, "ux_delivery_areas_name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "delivery area name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create delivery area")
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.DeliveryArea, error) {
	area, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "delivery area not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load delivery area")
	}
	return area, nil
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]models.DeliveryArea, error) {
	rows, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list delivery areas")
	}
	return rows, nil
}

// Update patches area fields. Fee edits never rewrite fees captured on
// existing orders.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.DeliveryArea, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery area name cannot be empty")
		}
		updates["name"] = name
	}
	if input.Fee != nil {
		if money.IsNegative(*input.Fee) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery fee cannot be negative")
		}
		updates["fee"] = money.Round2(*input.Fee)
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if db.IsUniqueViolation(err, "ux_delivery_areas_name") {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "delivery area name already exists")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update delivery area")
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the area. Orders that referenced it keep their captured
// fees with a null area id.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete delivery area")
	}
	return nil
}
