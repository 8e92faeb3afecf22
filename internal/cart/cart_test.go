package cart_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marromlanches/storefront-backend/internal/cart"
)

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAddLineNeverMerges(t *testing.T) {
	productID := uuid.New()
	lines := cart.AddLine(nil, cart.Line{ProductID: productID, UnitPrice: dec("10.00"), Quantity: 1})
	lines = cart.AddLine(lines, cart.Line{ProductID: productID, UnitPrice: dec("10.00"), Quantity: 1})

	require.Len(t, lines, 2)
	assert.NotEqual(t, lines[0].ID, lines[1].ID)
}

func TestAddLineKeepsProvidedID(t *testing.T) {
	lineID := uuid.New()
	lines := cart.AddLine(nil, cart.Line{ID: lineID, UnitPrice: dec("5.00"), Quantity: 1})
	require.Len(t, lines, 1)
	assert.Equal(t, lineID, lines[0].ID)
}

func TestAddLineIgnoresNonPositiveQuantity(t *testing.T) {
	lines := cart.AddLine(nil, cart.Line{UnitPrice: dec("10.00"), Quantity: 0})
	assert.Empty(t, lines)

	lines = cart.AddLine(nil, cart.Line{UnitPrice: dec("10.00"), Quantity: -1})
	assert.Empty(t, lines)

	lines = cart.AddLine(lines, cart.Line{UnitPrice: dec("5.00"), Quantity: 1})
	lines = cart.AddLine(lines, cart.Line{UnitPrice: dec("7.00"), Quantity: 0})
	require.Len(t, lines, 1)
	assert.True(t, dec("5.00").Equal(lines[0].UnitPrice))
}

func TestClearEmptiesCart(t *testing.T) {
	lines := cart.AddLine(nil, cart.Line{UnitPrice: dec("4.50"), Quantity: 2})
	lines = cart.AddLine(lines, cart.Line{UnitPrice: dec("8.00"), Quantity: 1})
	require.Len(t, lines, 2)

	lines = cart.Clear(lines)
	assert.Empty(t, lines)
	assert.True(t, dec("0.00").Equal(cart.Subtotal(lines)))
}

func TestUpdateQuantity(t *testing.T) {
	lines := cart.AddLine(nil, cart.Line{UnitPrice: dec("4.50"), Quantity: 1})
	lineID := lines[0].ID

	lines = cart.UpdateQuantity(lines, lineID, 3)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	lines = cart.UpdateQuantity(lines, uuid.New(), 7)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	lines := cart.AddLine(nil, cart.Line{UnitPrice: dec("4.50"), Quantity: 2})
	lines = cart.AddLine(lines, cart.Line{UnitPrice: dec("8.00"), Quantity: 1})

	lines = cart.UpdateQuantity(lines, lines[0].ID, 0)
	require.Len(t, lines, 1)
	assert.True(t, dec("8.00").Equal(lines[0].UnitPrice))

	lines = cart.UpdateQuantity(lines, lines[0].ID, -2)
	assert.Empty(t, lines)
}

func TestRemoveLine(t *testing.T) {
	lines := cart.AddLine(nil, cart.Line{UnitPrice: dec("1.00"), Quantity: 1})
	lines = cart.AddLine(lines, cart.Line{UnitPrice: dec("2.00"), Quantity: 1})

	lines = cart.RemoveLine(lines, lines[0].ID)
	require.Len(t, lines, 1)
	assert.True(t, dec("2.00").Equal(lines[0].UnitPrice))
}

func TestPerUnitPriceIncludesExtras(t *testing.T) {
	line := cart.Line{
		UnitPrice: dec("15.50"),
		Quantity:  2,
		Extras: []cart.LineExtra{
			{Name: "Cheddar", UnitPrice: dec("3.00"), Quantity: 1},
		},
	}

	assert.True(t, dec("18.50").Equal(cart.PerUnitPrice(line)))
	assert.True(t, dec("37.00").Equal(cart.LineTotal(line)))
}

func TestPerUnitPriceMultipliesExtraQuantity(t *testing.T) {
	line := cart.Line{
		UnitPrice: dec("10.00"),
		Quantity:  3,
		Extras: []cart.LineExtra{
			{Name: "Bacon", UnitPrice: dec("2.50"), Quantity: 2},
		},
	}

	assert.True(t, dec("15.00").Equal(cart.PerUnitPrice(line)))
	assert.True(t, dec("45.00").Equal(cart.LineTotal(line)))
}

func TestSubtotalSumsLineTotals(t *testing.T) {
	lines := []cart.Line{
		{
			UnitPrice: dec("15.50"),
			Quantity:  2,
			Extras:    []cart.LineExtra{{UnitPrice: dec("3.00"), Quantity: 1}},
		},
		{
			UnitPrice: dec("8.00"),
			Quantity:  1,
		},
	}

	assert.True(t, dec("45.00").Equal(cart.Subtotal(lines)))
}

func TestSubtotalAvoidsBinaryDrift(t *testing.T) {
	lines := []cart.Line{
		{UnitPrice: dec("0.10"), Quantity: 1},
		{UnitPrice: dec("0.20"), Quantity: 1},
	}

	assert.True(t, dec("0.30").Equal(cart.Subtotal(lines)))
}

func TestItemCount(t *testing.T) {
	lines := []cart.Line{
		{Quantity: 2},
		{Quantity: 3},
	}
	assert.Equal(t, 5, cart.ItemCount(lines))
}
