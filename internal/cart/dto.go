package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marromlanches/storefront-backend/pkg/enums"
)

// QuoteExtraInput is one requested add-on on a quote line.
type QuoteExtraInput struct {
	ExtraID  uuid.UUID
	Quantity int
}

// QuoteLineInput is one requested cart line. Prices are always loaded
// server-side; the client only sends ids and quantities.
type QuoteLineInput struct {
	LineID       *uuid.UUID
	ProductID    uuid.UUID
	Quantity     int
	Observations string
	Extras       []QuoteExtraInput
}

// QuoteInput is the full cart snapshot submitted for pricing.
type QuoteInput struct {
	Lines          []QuoteLineInput
	DeliveryType   enums.DeliveryType
	DeliveryAreaID *uuid.UUID
}

// QuoteExtra echoes one priced add-on.
type QuoteExtra struct {
	ExtraID   uuid.UUID       `json:"extra_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// QuoteLine is one priced cart line.
type QuoteLine struct {
	LineID       uuid.UUID       `json:"line_id"`
	ProductID    uuid.UUID       `json:"product_id"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	Observations string          `json:"observations,omitempty"`
	Extras       []QuoteExtra    `json:"extras,omitempty"`
	PerUnitPrice decimal.Decimal `json:"per_unit_price"`
	Total        decimal.Decimal `json:"total"`
}

// Quote is the fully priced cart.
type Quote struct {
	Lines       []QuoteLine     `json:"lines"`
	ItemCount   int             `json:"item_count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}
