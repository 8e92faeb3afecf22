package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marromlanches/storefront-backend/pkg/money"
)

// LineExtra is a priced add-on attached to a cart line with its own quantity.
type LineExtra struct {
	ExtraID   uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Line is one cart entry. Lines are identified by their own id, never by
// product: adding the same product twice yields two independent lines, each
// carrying its own add-ons and observations.
type Line struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	Name         string
	UnitPrice    decimal.Decimal
	Quantity     int
	Observations string
	Extras       []LineExtra
}

// AddLine appends a new line with a fresh id. Existing lines are never
// merged, and a quantity below one leaves the cart untouched.
func AddLine(lines []Line, line Line) []Line {
	if line.Quantity < 1 {
		return lines
	}
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	return append(lines, line)
}

// UpdateQuantity sets the quantity of the identified line. A quantity of zero
// or less removes the line. Unknown ids leave the slice untouched.
func UpdateQuantity(lines []Line, lineID uuid.UUID, quantity int) []Line {
	if quantity <= 0 {
		return RemoveLine(lines, lineID)
	}
	for i := range lines {
		if lines[i].ID == lineID {
			lines[i].Quantity = quantity
			break
		}
	}
	return lines
}

// RemoveLine drops the identified line, preserving the order of the rest.
func RemoveLine(lines []Line, lineID uuid.UUID) []Line {
	out := lines[:0]
	for _, line := range lines {
		if line.ID != lineID {
			out = append(out, line)
		}
	}
	return out
}

// Clear empties the cart. Checkout calls this once the order is persisted.
func Clear([]Line) []Line {
	return nil
}

// PerUnitPrice returns the effective unit price of a line: the product price
// plus every add-on price multiplied by its add-on quantity.
func PerUnitPrice(line Line) decimal.Decimal {
	price := line.UnitPrice
	for _, extra := range line.Extras {
		price = price.Add(extra.UnitPrice.Mul(decimal.NewFromInt(int64(extra.Quantity))))
	}
	return price
}

// LineTotal returns the per-unit price multiplied by the line quantity.
func LineTotal(line Line) decimal.Decimal {
	return PerUnitPrice(line).Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// Subtotal sums every line total. Add-ons are part of the subtotal.
func Subtotal(lines []Line) decimal.Decimal {
	sum := money.Zero()
	for _, line := range lines {
		sum = sum.Add(LineTotal(line))
	}
	return sum
}

// ItemCount returns the total unit count across all lines.
func ItemCount(lines []Line) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
