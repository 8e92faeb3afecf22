package money

import "github.com/shopspring/decimal"

// Money amounts flow through services as arbitrary-precision decimals and are
// only rounded to two places at persistence or display boundaries.

// Round2 rounds an amount to two decimal places (half away from zero).
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FromFloat converts a float input (JSON numbers) into a decimal amount.
func FromFloat(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

// IsNegative reports whether the amount is below zero.
func IsNegative(amount decimal.Decimal) bool {
	return amount.IsNegative()
}

// Zero is the additive identity for money sums.
func Zero() decimal.Decimal {
	return decimal.Zero
}
