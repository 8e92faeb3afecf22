package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethodOption is a settlement option offered at checkout (cash, pix,
// card on delivery). It is label-only; no processor integration exists.
type PaymentMethodOption struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Active    bool      `gorm:"column:active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (PaymentMethodOption) TableName() string { return "payment_methods" }
