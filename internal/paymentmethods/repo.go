package paymentmethods

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/pkg/db/models"
)

// Repository defines persistence operations for checkout payment options.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, method *models.PaymentMethodOption) (*models.PaymentMethodOption, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.PaymentMethodOption, error)
	GetActiveByName(ctx context.Context, name string) (*models.PaymentMethodOption, error)
	List(ctx context.Context, activeOnly bool) ([]models.PaymentMethodOption, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a payment-methods repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, method *models.PaymentMethodOption) (*models.PaymentMethodOption, error) {
	if err := r.db.WithContext(ctx).Create(method).Error; err != nil {
		return nil, err
	}
	return method, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.PaymentMethodOption, error) {
	var method models.PaymentMethodOption
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&method).Error; err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *repository) GetActiveByName(ctx context.Context, name string) (*models.PaymentMethodOption, error) {
	var method models.PaymentMethodOption
	err := r.db.WithContext(ctx).
		Where("lower(name) = lower(?)", name).
		Where("active = ?", true).
		First(&method).Error
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]models.PaymentMethodOption, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var rows []models.PaymentMethodOption
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.PaymentMethodOption{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PaymentMethodOption{}).Error
}
