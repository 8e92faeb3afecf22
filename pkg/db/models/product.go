package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product represents one menu listing. Prices on cart lines and order items
// are snapshots; editing a product never rewrites money already captured.
type Product struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string          `gorm:"column:name;not null"`
	Description     *string         `gorm:"column:description"`
	Price           decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Image           *string         `gorm:"column:image"`
	CategoryID      *uuid.UUID      `gorm:"column:category_id;type:uuid"`
	Category        *Category       `gorm:"foreignKey:CategoryID"`
	Ingredients     pq.StringArray  `gorm:"column:ingredients;type:text[]"`
	PreparationTime *int            `gorm:"column:preparation_time"`
	Rating          *float64        `gorm:"column:rating;type:numeric(3,1)"`
	Available       bool            `gorm:"column:available;not null;default:true"`
	HasAddons       bool            `gorm:"column:has_addons;not null;default:false"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
