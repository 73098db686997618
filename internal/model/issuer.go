package model

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Issuer mints draft invoices with sequential numbers, the configured
// currency and the configured default VAT rate. Safe for concurrent use.
type Issuer struct {
	mu       sync.Mutex
	seq      Sequence
	currency string
	vatRate  decimal.Decimal
}

// NewIssuer creates an issuer. The rate is a fraction (0.20 for 20%).
func NewIssuer(numberPrefix, currency string, defaultVatRate decimal.Decimal) *Issuer {
	return &Issuer{
		seq:      Sequence{Prefix: numberPrefix},
		currency: currency,
		vatRate:  defaultVatRate,
	}
}

// New issues the next numbered draft invoice.
func (i *Issuer) New(now time.Time) *Invoice {
	i.mu.Lock()
	number := i.seq.Next(now)
	i.mu.Unlock()

	inv := NewInvoice(number, now)
	inv.Currency = i.currency
	return inv
}

// NewLine returns a standard-rated line carrying the issuer's default
// VAT rate. Amounts are derived later by ComputeAmounts.
func (i *Issuer) NewLine(description string, quantity decimal.Decimal, unitPriceCents int64) Line {
	return Line{
		ID:             uuid.NewString(),
		Description:    description,
		Quantity:       quantity,
		UnitPriceCents: unitPriceCents,
		VatRate:        i.vatRate,
		VatCategory:    VatStandard,
	}
}
