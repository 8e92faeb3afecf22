package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemExtra records an add-on attached to an order item. Quantity is the
// add-on quantity multiplied by the parent line quantity at persistence time.
type OrderItemExtra struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderItemID uuid.UUID       `gorm:"column:order_item_id;type:uuid;not null"`
	ExtraID     *uuid.UUID      `gorm:"column:extra_id;type:uuid"`
	Extra       *Extra          `gorm:"foreignKey:ExtraID"`
	Quantity    int             `gorm:"column:quantity;not null"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	TotalPrice  decimal.Decimal `gorm:"column:total_price;type:numeric(10,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (OrderItemExtra) TableName() string { return "order_item_extras" }
