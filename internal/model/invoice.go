package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daniss/frenchInvoice/internal/money"
	"github.com/daniss/frenchInvoice/internal/validation"
)

// Status is the lifecycle state of an invoice document.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusValidated Status = "validated"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusArchived  Status = "archived"
)

// statusTransitions lists the allowed next states per state. Cancelled
// and archived are terminal.
var statusTransitions = map[Status][]Status{
	StatusDraft:     {StatusValidated, StatusCancelled},
	StatusValidated: {StatusSent, StatusCancelled},
	StatusSent:      {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusArchived},
	StatusCancelled: {},
	StatusArchived:  {},
}

// CanTransition reports whether the move from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Level is the Factur-X conformance profile of the document.
type Level string

const (
	LevelMinimum  Level = "minimum"
	LevelBasicWL  Level = "basicwl"
	LevelBasic    Level = "basic"
	LevelEN16931  Level = "en16931"
	LevelExtended Level = "extended"
)

// VatCategory is the UNTDID 5305 VAT category code carried per line and
// per breakdown entry.
type VatCategory string

const (
	VatStandard       VatCategory = "S"
	VatZeroRated      VatCategory = "Z"
	VatExempt         VatCategory = "E"
	VatReverseCharge  VatCategory = "AE"
	VatIntraCommunity VatCategory = "K"
	VatExport         VatCategory = "G"
	VatOutOfScope     VatCategory = "O"
	VatCanaryIslands  VatCategory = "L"
	VatCeutaMelilla   VatCategory = "M"
)

var knownVatCategories = map[VatCategory]bool{
	VatStandard: true, VatZeroRated: true, VatExempt: true,
	VatReverseCharge: true, VatIntraCommunity: true, VatExport: true,
	VatOutOfScope: true, VatCanaryIslands: true, VatCeutaMelilla: true,
}

// Known reports whether the category is a recognized UNTDID 5305 code.
func (c VatCategory) Known() bool {
	return knownVatCategories[c]
}

// Line is one invoice line. Quantity and rates are decimals; all derived
// amounts are integer cents computed by ComputeAmounts.
type Line struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`

	UnitPriceCents int64 `json:"unit_price_cents"`

	// Discount is a percentage, 0 to 100.
	Discount decimal.Decimal `json:"discount,omitempty"`

	// VatRate is a fraction: 0.20 means 20%.
	VatRate     decimal.Decimal `json:"vat_rate"`
	VatCategory VatCategory     `json:"vat_category"`

	DiscountCents int64 `json:"discount_cents"`
	NetCents      int64 `json:"net_cents"`
	TaxCents      int64 `json:"tax_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// ComputeAmounts derives the line's cent amounts from quantity, unit
// price, discount and VAT rate. Each amount is rounded half away from
// zero independently, then totals are formed by integer addition so the
// identity net + tax == total holds exactly.
func (l *Line) ComputeAmounts() {
	gross := l.Quantity.Mul(decimal.NewFromInt(l.UnitPriceCents))
	grossCents := money.RoundCents(gross)

	l.NetCents = money.DiscountedCents(grossCents, l.Discount)
	l.DiscountCents = grossCents - l.NetCents
	l.TaxCents = money.VatCents(l.NetCents, l.VatRate)
	l.TotalCents = l.NetCents + l.TaxCents
}

// VatBreakdownEntry is one (category, rate) bucket of the document's VAT
// summary.
type VatBreakdownEntry struct {
	Category  VatCategory     `json:"category"`
	Rate      decimal.Decimal `json:"rate"`
	BaseCents int64           `json:"base_cents"`
	TaxCents  int64           `json:"tax_cents"`
}

// PaymentInstructions carries the payment means of the document.
type PaymentInstructions struct {
	Iban      string     `json:"iban,omitempty"`
	Bic       string     `json:"bic,omitempty"`
	Reference string     `json:"reference,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Terms     string     `json:"terms,omitempty"`
}

// Invoice is an EN 16931 invoice document.
type Invoice struct {
	ID       uuid.UUID `json:"id"`
	Number   string    `json:"number"`
	Status   Status    `json:"status"`
	Level    Level     `json:"level"`
	Currency string    `json:"currency"`

	IssueDate    time.Time  `json:"issue_date"`
	TaxPointDate *time.Time `json:"tax_point_date,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`

	// Supplier and Buyer are shared references into the company
	// aggregates, never copies: a correction on the company is visible
	// on every document referencing it.
	Supplier *Company `json:"supplier"`
	Buyer    *Company `json:"buyer"`

	Lines []Line `json:"lines"`

	NetCents   int64 `json:"net_cents"`
	TaxCents   int64 `json:"tax_cents"`
	TotalCents int64 `json:"total_cents"`
	PaidCents  int64 `json:"paid_cents"`

	VatBreakdown []VatBreakdownEntry `json:"vat_breakdown"`

	Payment *PaymentInstructions `json:"payment,omitempty"`
	Notes   string               `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewInvoice creates a draft EN 16931 invoice with a fresh ID.
func NewInvoice(number string, issueDate time.Time) *Invoice {
	now := time.Now().UTC()
	return &Invoice{
		ID:        uuid.New(),
		Number:    number,
		Status:    StatusDraft,
		Level:     LevelEN16931,
		Currency:  "EUR",
		IssueDate: issueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ComputeTotals recomputes every line, the document totals and the VAT
// breakdown. Document totals are sums of line cents, never re-rounded.
func (inv *Invoice) ComputeTotals() {
	inv.NetCents = 0
	inv.TaxCents = 0
	for i := range inv.Lines {
		inv.Lines[i].ComputeAmounts()
		inv.NetCents += inv.Lines[i].NetCents
		inv.TaxCents += inv.Lines[i].TaxCents
	}
	inv.TotalCents = inv.NetCents + inv.TaxCents
	inv.VatBreakdown = inv.buildVatBreakdown()
	inv.UpdatedAt = time.Now().UTC()
}

// buildVatBreakdown groups line amounts by (category, rate) in order of
// first appearance.
func (inv *Invoice) buildVatBreakdown() []VatBreakdownEntry {
	type key struct {
		category VatCategory
		rate     string
	}
	index := make(map[key]int)
	entries := make([]VatBreakdownEntry, 0, len(inv.Lines))

	for _, line := range inv.Lines {
		k := key{line.VatCategory, line.VatRate.String()}
		i, ok := index[k]
		if !ok {
			i = len(entries)
			index[k] = i
			entries = append(entries, VatBreakdownEntry{
				Category: line.VatCategory,
				Rate:     line.VatRate,
			})
		}
		entries[i].BaseCents += line.NetCents
		entries[i].TaxCents += line.TaxCents
	}
	return entries
}

// Validate checks the document against the EN 16931 core invariants:
// mandatory fields, line arithmetic, document totals and breakdown
// consistency. It never mutates the invoice; call ComputeTotals first if
// amounts are stale.
func (inv *Invoice) Validate() *validation.Result {
	result := validation.NewResult()

	if inv.Number == "" {
		result.AddError("number", validation.CodeMissingField, "invoice number (BT-1) is mandatory")
	}
	if inv.IssueDate.IsZero() {
		result.AddError("issue_date", validation.CodeMissingField, "issue date (BT-2) is mandatory")
	}
	if inv.Currency == "" {
		result.AddError("currency", validation.CodeMissingField, "currency code (BT-5) is mandatory")
	}
	if inv.Supplier == nil || inv.Supplier.Name == "" {
		result.AddError("supplier.name", validation.CodeMissingField, "seller name (BT-27) is mandatory")
	}
	if inv.Buyer == nil || inv.Buyer.Name == "" {
		result.AddError("buyer.name", validation.CodeMissingField, "buyer name (BT-44) is mandatory")
	}

	var lineNet, lineTax int64
	for i, line := range inv.Lines {
		field := fmt.Sprintf("lines[%d]", i)
		if line.NetCents+line.TaxCents != line.TotalCents {
			result.AddError(field, validation.CodeLineSumMismatch,
				fmt.Sprintf("line total %d does not equal net %d + tax %d",
					line.TotalCents, line.NetCents, line.TaxCents))
		}
		if !line.VatCategory.Known() {
			result.AddError(field+".vat_category", validation.CodeUnknownVatCategory,
				fmt.Sprintf("unknown VAT category %q", line.VatCategory))
		}
		lineNet += line.NetCents
		lineTax += line.TaxCents
	}

	if lineNet != inv.NetCents || lineTax != inv.TaxCents {
		result.AddError("totals", validation.CodeLineSumMismatch,
			"document totals do not equal the sum of line amounts")
	}
	if inv.NetCents+inv.TaxCents != inv.TotalCents {
		result.AddError("totals", validation.CodeTotalMismatch,
			fmt.Sprintf("total %d does not equal net %d + tax %d",
				inv.TotalCents, inv.NetCents, inv.TaxCents))
	}

	if len(inv.Lines) > 0 && len(inv.VatBreakdown) == 0 {
		result.AddError("vat_breakdown", validation.CodeEmptyVatBreakdown,
			"VAT breakdown is mandatory when the document has lines")
	}
	var bdBase, bdTax int64
	for _, entry := range inv.VatBreakdown {
		bdBase += entry.BaseCents
		bdTax += entry.TaxCents
	}
	if len(inv.VatBreakdown) > 0 && (bdBase != inv.NetCents || bdTax != inv.TaxCents) {
		result.AddError("vat_breakdown", validation.CodeVatBreakdownMismatch,
			"VAT breakdown does not partition the document totals")
	}

	if inv.PaidCents < 0 || inv.PaidCents > inv.TotalCents {
		result.AddError("paid_cents", validation.CodePaidExceedsTotal,
			fmt.Sprintf("paid amount %d is outside [0, %d]", inv.PaidCents, inv.TotalCents))
	}

	return result
}

// MarkValidated moves a draft to validated after its invariants pass.
// On failure the status is unchanged and the error carries the result.
func (inv *Invoice) MarkValidated() error {
	if !inv.Status.CanTransition(StatusValidated) {
		return &TransitionError{From: inv.Status, To: StatusValidated}
	}
	if result := inv.Validate(); !result.Valid {
		return &InvariantError{Result: result}
	}
	inv.Status = StatusValidated
	inv.UpdatedAt = time.Now().UTC()
	return nil
}

// RecordPayment adds a received payment. Payments must be positive and
// must not exceed the invoice total; when the document becomes fully
// paid and its state allows it, it moves to paid automatically.
func (inv *Invoice) RecordPayment(cents int64) error {
	if cents <= 0 {
		return NewAmountError("paid_cents", cents, "payment must be positive")
	}
	if inv.PaidCents+cents > inv.TotalCents {
		return NewAmountError("paid_cents", cents, "payment would exceed the invoice total")
	}

	inv.PaidCents += cents
	if inv.PaidCents == inv.TotalCents && inv.Status.CanTransition(StatusPaid) {
		inv.Status = StatusPaid
	}
	inv.UpdatedAt = time.Now().UTC()
	return nil
}

// Transition moves the invoice to the next lifecycle state.
func (inv *Invoice) Transition(next Status) error {
	if !inv.Status.CanTransition(next) {
		return &TransitionError{From: inv.Status, To: next}
	}
	inv.Status = next
	inv.UpdatedAt = time.Now().UTC()
	return nil
}

// Sequence issues sequential invoice numbers of the form
// "<prefix>-<year>-<counter>". The counter resets when the year changes.
// Not safe for concurrent use; guard with a mutex if shared.
type Sequence struct {
	Prefix  string
	Year    int
	Counter int
	Width   int
}

// Next returns the next number in the sequence for the given time.
func (s *Sequence) Next(now time.Time) string {
	year := now.Year()
	if year != s.Year {
		s.Year = year
		s.Counter = 0
	}
	s.Counter++
	width := s.Width
	if width == 0 {
		width = 4
	}
	return fmt.Sprintf("%s-%d-%0*d", s.Prefix, s.Year, width, s.Counter)
}
