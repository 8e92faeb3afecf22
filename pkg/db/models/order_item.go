package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is the immutable per-line financial record captured at checkout.
type OrderItem struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID      uuid.UUID        `gorm:"column:order_id;type:uuid;not null"`
	ProductID    *uuid.UUID       `gorm:"column:product_id;type:uuid"`
	Product      *Product         `gorm:"foreignKey:ProductID"`
	Quantity     int              `gorm:"column:quantity;not null"`
	UnitPrice    decimal.Decimal  `gorm:"column:unit_price;type:numeric(10,2);not null"`
	TotalPrice   decimal.Decimal  `gorm:"column:total_price;type:numeric(10,2);not null"`
	Observations *string          `gorm:"column:observations"`
	Extras       []OrderItemExtra `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
}

func (OrderItem) TableName() string { return "order_items" }
