package delivery

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/pkg/db/models"
)

// Repository defines persistence operations for delivery areas.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, area *models.DeliveryArea) (*models.DeliveryArea, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.DeliveryArea, error)
	List(ctx context.Context, activeOnly bool) ([]models.DeliveryArea, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a delivery-area repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, area *models.DeliveryArea) (*models.DeliveryArea, error) {
	if err := r.db.WithContext(ctx).Create(area).Error; err != nil {
		return nil, err
	}
	return area, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.DeliveryArea, error) {
	var area models.DeliveryArea
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&area).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]models.DeliveryArea, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var rows []models.DeliveryArea
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.DeliveryArea{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.DeliveryArea{}).Error
}
