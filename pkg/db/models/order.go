package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marromlanches/storefront-backend/pkg/enums"
)

// Order is the persisted checkout result. Total always equals subtotal plus
// delivery fee at creation time and is never recomputed afterwards.
type Order struct {
	ID              uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName    string             `gorm:"column:customer_name;not null"`
	CustomerPhone   string             `gorm:"column:customer_phone;not null;default:''"`
	CustomerAddress *string            `gorm:"column:customer_address"`
	DeliveryType    enums.DeliveryType `gorm:"column:delivery_type;not null"`
	PaymentMethod   string             `gorm:"column:payment_method;not null"`
	DeliveryAreaID  *uuid.UUID         `gorm:"column:delivery_area_id;type:uuid"`
	DeliveryArea    *DeliveryArea      `gorm:"foreignKey:DeliveryAreaID"`
	Subtotal        decimal.Decimal    `gorm:"column:subtotal;type:numeric(10,2);not null"`
	DeliveryFee     decimal.Decimal    `gorm:"column:delivery_fee;type:numeric(10,2);not null;default:0"`
	Total           decimal.Decimal    `gorm:"column:total;type:numeric(10,2);not null"`
	Status          enums.OrderStatus  `gorm:"column:status;not null;default:'pending'"`
	Notes           *string            `gorm:"column:notes"`
	OrderType       enums.OrderType    `gorm:"column:order_type;not null;default:'cliente'"`
	Items           []OrderItem        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string { return "orders" }
