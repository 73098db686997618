// Package money provides decimal helpers for invoice amounts stored as
// integer cents. EN16931 computations are carried out in currency minor
// units, so euros only appear at the formatting boundary.
package money

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// DefaultVatRate is the standard French VAT rate, used when the caller
// injects no other rate (callers normally take it from config).
var DefaultVatRate = decimal.NewFromFloat(0.20)

var hundred = decimal.NewFromInt(100)

// FromCents converts integer cents to a decimal euro amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}

// ToCents converts a decimal euro amount to integer cents, rounding half
// away from zero.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// RoundCents rounds a decimal cent amount to a whole number of cents.
func RoundCents(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// FromString parses a decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// VatCents computes the VAT amount in cents for a net amount in cents:
// round(net * rate), half away from zero. The rate is a fraction
// (0.20 for 20%).
func VatCents(netCents int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(netCents).Mul(rate).Round(0).IntPart()
}

// WithVatCents returns net + VAT in cents at the given rate.
func WithVatCents(netCents int64, rate decimal.Decimal) int64 {
	return netCents + VatCents(netCents, rate)
}

// DiscountedCents applies a percentage discount (0-100) to a cent amount:
// round(amount * (1 - pct/100)).
func DiscountedCents(amountCents int64, discountPct decimal.Decimal) int64 {
	factor := decimal.NewFromInt(1).Sub(discountPct.Div(hundred))
	return decimal.NewFromInt(amountCents).Mul(factor).Round(0).IntPart()
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// IsNonNegative returns true if the decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}
