package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marromlanches/storefront-backend/internal/cart"
	"github.com/marromlanches/storefront-backend/pkg/enums"
)

// CheckoutInput is a storefront checkout submission.
type CheckoutInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	DeliveryType    enums.DeliveryType
	DeliveryAreaID  *uuid.UUID
	PaymentMethod   string
	Notes           string
	Lines           []cart.QuoteLineInput
}

// CounterCheckoutInput is a staff-entered table order. It skips customer
// contact details and settles at the counter.
type CounterCheckoutInput struct {
	TableNumber  int
	Observations string
	Lines        []cart.QuoteLineInput
}

// CheckoutResult is returned after the order is persisted.
type CheckoutResult struct {
	OrderID     uuid.UUID         `json:"order_id"`
	Status      enums.OrderStatus `json:"status"`
	StatusLabel string            `json:"status_label"`
	Subtotal    decimal.Decimal   `json:"subtotal"`
	DeliveryFee decimal.Decimal   `json:"delivery_fee"`
	Total       decimal.Decimal   `json:"total"`
	ItemCount   int               `json:"item_count"`
}

// OrderCreatedData is the outbox payload for new orders.
type OrderCreatedData struct {
	OrderID      uuid.UUID          `json:"orderId"`
	CustomerName string             `json:"customerName"`
	DeliveryType enums.DeliveryType `json:"deliveryType"`
	OrderType    enums.OrderType    `json:"orderType"`
	ItemCount    int                `json:"itemCount"`
	Total        decimal.Decimal    `json:"total"`
}
