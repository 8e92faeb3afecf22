package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanySettings is the single-row restaurant profile shown on the storefront.
type CompanySettings struct {
	ID                  uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CompanyName         string           `gorm:"column:company_name;not null"`
	Subtitle            *string          `gorm:"column:subtitle"`
	WelcomeTitle        *string          `gorm:"column:welcome_title"`
	Address             *string          `gorm:"column:address"`
	Phone               *string          `gorm:"column:phone"`
	WhatsApp            *string          `gorm:"column:whatsapp"`
	BusinessHours       *string          `gorm:"column:business_hours"`
	DeliveryTime        *string          `gorm:"column:delivery_time"`
	FreeDeliveryMinimum *decimal.Decimal `gorm:"column:free_delivery_minimum;type:numeric(10,2)"`
	LogoURL             *string          `gorm:"column:logo_url"`
	IsOpen              bool             `gorm:"column:is_open;not null;default:true"`
	CreatedAt           time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (CompanySettings) TableName() string { return "company_settings" }
