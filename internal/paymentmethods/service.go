package paymentmethods

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/pkg/db"
	"github.com/marromlanches/storefront-backend/pkg/db/models"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
)

// CreateInput carries the fields accepted when creating a payment option.
type CreateInput struct {
	Name   string
	Active *bool
}

// UpdateInput carries the patchable payment-option fields. Nil fields are
// untouched.
type UpdateInput struct {
	Name   *string
	Active *bool
}

// Service exposes payment-option management.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.PaymentMethodOption, error)
	Get(ctx context.Context, id uuid.UUID) (*models.PaymentMethodOption, error)
	GetActiveByName(ctx context.Context, name string) (*models.PaymentMethodOption, error)
	List(ctx context.Context, activeOnly bool) ([]models.PaymentMethodOption, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.PaymentMethodOption, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService builds a payment-methods service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("payment methods repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.PaymentMethodOption, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment method name is required")
	}

	method := &models.PaymentMethodOption{
		ID:     uuid.New(),
		Name:   name,
		Active: true,
	}
	if input.Active != nil {
		method.Active = *input.Active
	}

	created, err := s.repo.Create(ctx, method)
	if err != nil {
		if db.IsUniqueViolation(err, "ux_payment_methods_name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "payment method name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create payment method")
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.PaymentMethodOption, error) {
	method, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment method not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payment method")
	}
	return method, nil
}

// GetActiveByName resolves a checkout payment label case-insensitively.
// Callers map gorm.ErrRecordNotFound themselves.
func (s *service) GetActiveByName(ctx context.Context, name string) (*models.PaymentMethodOption, error) {
	return s.repo.GetActiveByName(ctx, strings.TrimSpace(name))
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]models.PaymentMethodOption, error) {
	rows, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payment methods")
	}
	return rows, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.PaymentMethodOption, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment method name cannot be empty")
		}
		updates["name"] = name
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if db.IsUniqueViolation(err, "ux_payment_methods_name") {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "payment method name already exists")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update payment method")
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the option. Past orders keep the label they were placed
// with; it is stored denormalized on the order row.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete payment method")
	}
	return nil
}
