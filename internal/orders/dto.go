package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marromlanches/storefront-backend/pkg/enums"
)

// OrderFilters describe the inputs supported by the order list.
type OrderFilters struct {
	Status    *enums.OrderStatus
	OrderType *enums.OrderType
	DateFrom  *time.Time
	DateTo    *time.Time
	Query     string
}

// OrderSummary is the row shape returned by the order list.
type OrderSummary struct {
	ID           uuid.UUID          `json:"id"`
	CustomerName string             `json:"customer_name"`
	DeliveryType enums.DeliveryType `json:"delivery_type"`
	OrderType    enums.OrderType    `json:"order_type"`
	Status       enums.OrderStatus  `json:"status"`
	StatusLabel  string             `json:"status_label"`
	ItemCount    int                `json:"item_count"`
	Total        decimal.Decimal    `json:"total"`
	CreatedAt    time.Time          `json:"created_at"`
}

// OrderList wraps the paginated orders plus the next page cursor.
type OrderList struct {
	Orders     []OrderSummary `json:"orders"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// OrderDetail is the full order plus its lifecycle affordances, so the
// board can render buttons without re-implementing transition rules.
type OrderDetail struct {
	ID              uuid.UUID          `json:"id"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress *string            `json:"customer_address,omitempty"`
	DeliveryType    enums.DeliveryType `json:"delivery_type"`
	DeliveryArea    *string            `json:"delivery_area,omitempty"`
	PaymentMethod   string             `json:"payment_method"`
	OrderType       enums.OrderType    `json:"order_type"`
	Notes           *string            `json:"notes,omitempty"`
	Items           []OrderDetailItem  `json:"items"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	DeliveryFee     decimal.Decimal    `json:"delivery_fee"`
	Total           decimal.Decimal    `json:"total"`
	Status          enums.OrderStatus  `json:"status"`
	StatusLabel     string             `json:"status_label"`
	NextStatus      *enums.OrderStatus `json:"next_status,omitempty"`
	PreviousStatus  *enums.OrderStatus `json:"previous_status,omitempty"`
	CanCancel       bool               `json:"can_cancel"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// OrderDetailItem is one line of the order detail.
type OrderDetailItem struct {
	ID           uuid.UUID         `json:"id"`
	ProductID    *uuid.UUID        `json:"product_id,omitempty"`
	ProductName  string            `json:"product_name"`
	Quantity     int               `json:"quantity"`
	UnitPrice    decimal.Decimal   `json:"unit_price"`
	TotalPrice   decimal.Decimal   `json:"total_price"`
	Observations *string           `json:"observations,omitempty"`
	Extras       []OrderDetailAddon `json:"extras,omitempty"`
}

// OrderDetailAddon is one add-on row of an order item.
type OrderDetailAddon struct {
	ExtraID    *uuid.UUID      `json:"extra_id,omitempty"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// StatusCount is one entry of the board summary.
type StatusCount struct {
	Status enums.OrderStatus `json:"status"`
	Label  string            `json:"label"`
	Count  int64             `json:"count"`
}

// OrderStatusChangedData is the outbox payload for lifecycle transitions.
type OrderStatusChangedData struct {
	OrderID    uuid.UUID         `json:"orderId"`
	FromStatus enums.OrderStatus `json:"fromStatus"`
	ToStatus   enums.OrderStatus `json:"toStatus"`
}
