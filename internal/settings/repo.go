package settings

import (
	"context"

	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/pkg/db/models"
)

// Repository defines persistence for the single company settings row.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Get(ctx context.Context) (*models.CompanySettings, error)
	Create(ctx context.Context, settings *models.CompanySettings) (*models.CompanySettings, error)
	Update(ctx context.Context, settings *models.CompanySettings) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a settings repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// Get returns the oldest settings row. The table is expected to hold one
// row; ordering makes duplicates deterministic instead of fatal.
func (r *repository) Get(ctx context.Context) (*models.CompanySettings, error) {
	var row models.CompanySettings
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Create(ctx context.Context, settings *models.CompanySettings) (*models.CompanySettings, error) {
	if err := r.db.WithContext(ctx).Create(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *repository) Update(ctx context.Context, settings *models.CompanySettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
