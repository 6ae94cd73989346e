package decimal

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromInt creates decimal from int (common for TWD unit prices)
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromFloat creates decimal from float with rounding
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// CalculateTax computes tax amount: amount * rate.
// Rounds to 0 decimals (TWD invoice amounts are whole dollars).
func CalculateTax(amount, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return Zero
	}
	return amount.Mul(rate).Round(0)
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}

// RoundTWD rounds to whole number (TWD invoices carry no cents)
func RoundTWD(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
