package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniss/frenchInvoice/internal/model"
	"github.com/daniss/frenchInvoice/internal/validation"
)

var vat20 = decimal.NewFromFloat(0.20)

func validInvoice() *model.Invoice {
	inv := model.NewInvoice("FA-2026-0001", time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC))
	supplier := model.NewCompany("Exemple SARL")
	supplier.SetSiren("732829320")
	inv.Supplier = supplier
	inv.Buyer = model.NewCompany("Client SA")
	inv.Lines = []model.Line{
		{
			ID:             "1",
			Description:    "Prestation de conseil",
			Quantity:       decimal.NewFromInt(3),
			UnitPriceCents: 2000,
			VatRate:        vat20,
			VatCategory:    model.VatStandard,
		},
		{
			ID:             "2",
			Description:    "Licence logicielle",
			Quantity:       decimal.NewFromInt(1),
			UnitPriceCents: 4000,
			VatRate:        vat20,
			VatCategory:    model.VatStandard,
		},
	}
	inv.ComputeTotals()
	return inv
}

func TestLine_ComputeAmounts(t *testing.T) {
	line := model.Line{
		Quantity:       decimal.NewFromInt(10),
		UnitPriceCents: 10000,
		VatRate:        vat20,
		VatCategory:    model.VatStandard,
	}

	line.ComputeAmounts()

	assert.Equal(t, int64(100000), line.NetCents)
	assert.Equal(t, int64(20000), line.TaxCents)
	assert.Equal(t, int64(120000), line.TotalCents)
	assert.Zero(t, line.DiscountCents)
}

func TestLine_ComputeAmountsWithDiscount(t *testing.T) {
	line := model.Line{
		Quantity:       decimal.NewFromInt(5),
		UnitPriceCents: 20000,
		Discount:       decimal.NewFromInt(10),
		VatRate:        vat20,
		VatCategory:    model.VatStandard,
	}

	line.ComputeAmounts()

	// Gross = 100,000; discount 10% = 10,000; net = 90,000.
	assert.Equal(t, int64(10000), line.DiscountCents)
	assert.Equal(t, int64(90000), line.NetCents)
	assert.Equal(t, int64(18000), line.TaxCents)
	assert.Equal(t, int64(108000), line.TotalCents)
}

func TestLine_FractionalQuantityRounding(t *testing.T) {
	// 1.5 x 3.33 € = 4.995 €, rounds to 500 cents.
	line := model.Line{
		Quantity:       decimal.NewFromFloat(1.5),
		UnitPriceCents: 333,
		VatRate:        vat20,
		VatCategory:    model.VatStandard,
	}

	line.ComputeAmounts()

	assert.Equal(t, int64(500), line.NetCents)
	assert.Equal(t, int64(100), line.TaxCents)
	assert.Equal(t, line.NetCents+line.TaxCents, line.TotalCents)
}

func TestInvoice_ComputeTotals(t *testing.T) {
	inv := validInvoice()

	// Line 1: net 6,000, tax 1,200. Line 2: net 4,000, tax 800.
	assert.Equal(t, int64(10000), inv.NetCents)
	assert.Equal(t, int64(2000), inv.TaxCents)
	assert.Equal(t, int64(12000), inv.TotalCents)

	require.Len(t, inv.VatBreakdown, 1)
	assert.Equal(t, model.VatStandard, inv.VatBreakdown[0].Category)
	assert.Equal(t, int64(10000), inv.VatBreakdown[0].BaseCents)
	assert.Equal(t, int64(2000), inv.VatBreakdown[0].TaxCents)
}

func TestInvoice_VatBreakdownGroupsByCategoryAndRate(t *testing.T) {
	inv := validInvoice()
	inv.Lines = append(inv.Lines, model.Line{
		ID:             "3",
		Description:    "Livres",
		Quantity:       decimal.NewFromInt(2),
		UnitPriceCents: 1000,
		VatRate:        decimal.NewFromFloat(0.055),
		VatCategory:    model.VatStandard,
	}, model.Line{
		ID:             "4",
		Description:    "Formation exonérée",
		Quantity:       decimal.NewFromInt(1),
		UnitPriceCents: 5000,
		VatRate:        decimal.Zero,
		VatCategory:    model.VatExempt,
	})
	inv.ComputeTotals()

	require.Len(t, inv.VatBreakdown, 3)
	// First appearance order.
	assert.Equal(t, model.VatStandard, inv.VatBreakdown[0].Category)
	assert.Equal(t, "0.055", inv.VatBreakdown[1].Rate.String())
	assert.Equal(t, model.VatExempt, inv.VatBreakdown[2].Category)

	var base, tax int64
	for _, e := range inv.VatBreakdown {
		base += e.BaseCents
		tax += e.TaxCents
	}
	assert.Equal(t, inv.NetCents, base)
	assert.Equal(t, inv.TaxCents, tax)
}

func TestInvoice_ValidateAccepts(t *testing.T) {
	inv := validInvoice()
	taxPoint := inv.IssueDate.AddDate(0, 0, 7)
	inv.TaxPointDate = &taxPoint

	result := inv.Validate()
	assert.True(t, result.Valid, "errors: %+v", result.Errors)
}

func TestInvoice_CompaniesAreSharedReferences(t *testing.T) {
	supplier := model.NewCompany("Exemple SARL")
	supplier.SetSiren("732829320")

	a := validInvoice()
	b := validInvoice()
	a.Supplier = supplier
	b.Supplier = supplier

	// A correction on the aggregate is visible on every document.
	supplier.SetSiren("552100554")

	assert.Equal(t, "552100554", a.Supplier.Siren)
	assert.Equal(t, "552100554", b.Supplier.Siren)
	assert.False(t, a.Supplier.SirenVerified)
	assert.Same(t, a.Supplier, b.Supplier)
}

func TestInvoice_ValidateTotalMismatch(t *testing.T) {
	inv := validInvoice()
	inv.TotalCents = 12001

	result := inv.Validate()
	assert.False(t, result.Valid)
	assert.True(t, result.HasCode(validation.CodeTotalMismatch))
}

func TestInvoice_ValidateLineSumMismatch(t *testing.T) {
	inv := validInvoice()
	inv.Lines[0].NetCents = 5999

	result := inv.Validate()
	assert.False(t, result.Valid)
	assert.True(t, result.HasCode(validation.CodeLineSumMismatch))
}

func TestInvoice_ValidateMandatoryFields(t *testing.T) {
	inv := validInvoice()
	inv.Number = ""
	inv.Currency = ""
	inv.Buyer.Name = ""

	result := inv.Validate()
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 3)
	assert.True(t, result.HasCode(validation.CodeMissingField))
}

func TestInvoice_ValidateUnknownVatCategory(t *testing.T) {
	inv := validInvoice()
	inv.Lines[0].VatCategory = "X"
	inv.ComputeTotals()

	result := inv.Validate()
	assert.False(t, result.Valid)
	assert.True(t, result.HasCode(validation.CodeUnknownVatCategory))
}

func TestInvoice_ValidateBreakdownMismatch(t *testing.T) {
	inv := validInvoice()
	inv.VatBreakdown[0].BaseCents = 9999

	result := inv.Validate()
	assert.False(t, result.Valid)
	assert.True(t, result.HasCode(validation.CodeVatBreakdownMismatch))
}

func TestInvoice_MarkValidated(t *testing.T) {
	inv := validInvoice()

	require.NoError(t, inv.MarkValidated())
	assert.Equal(t, model.StatusValidated, inv.Status)

	// Already validated, cannot validate again.
	err := inv.MarkValidated()
	var terr *model.TransitionError
	require.ErrorAs(t, err, &terr)
}

func TestInvoice_MarkValidatedRejectsBrokenInvariants(t *testing.T) {
	inv := validInvoice()
	inv.TotalCents = 99

	err := inv.MarkValidated()
	var ierr *model.InvariantError
	require.ErrorAs(t, err, &ierr)
	assert.True(t, ierr.Result.HasCode(validation.CodeTotalMismatch))
	assert.Equal(t, model.StatusDraft, inv.Status)
}

func TestInvoice_RecordPayment(t *testing.T) {
	inv := validInvoice()
	require.NoError(t, inv.MarkValidated())
	require.NoError(t, inv.Transition(model.StatusSent))

	require.NoError(t, inv.RecordPayment(5000))
	assert.Equal(t, int64(5000), inv.PaidCents)
	assert.Equal(t, model.StatusSent, inv.Status, "partial payment must not settle the invoice")

	require.NoError(t, inv.RecordPayment(7000))
	assert.Equal(t, inv.TotalCents, inv.PaidCents)
	assert.Equal(t, model.StatusPaid, inv.Status)
}

func TestInvoice_RecordPaymentRejectsOverpayment(t *testing.T) {
	inv := validInvoice()

	err := inv.RecordPayment(inv.TotalCents + 1)
	var aerr *model.AmountError
	require.ErrorAs(t, err, &aerr)
	assert.Zero(t, inv.PaidCents)

	assert.Error(t, inv.RecordPayment(0))
	assert.Error(t, inv.RecordPayment(-100))
}

func TestInvoice_ValidatePaidBounds(t *testing.T) {
	inv := validInvoice()
	inv.PaidCents = inv.TotalCents + 1

	result := inv.Validate()
	assert.False(t, result.Valid)
	assert.True(t, result.HasCode(validation.CodePaidExceedsTotal))
}

func TestStatus_Transitions(t *testing.T) {
	inv := validInvoice()
	require.NoError(t, inv.MarkValidated())
	require.NoError(t, inv.Transition(model.StatusSent))
	require.NoError(t, inv.Transition(model.StatusPaid))
	require.NoError(t, inv.Transition(model.StatusArchived))

	err := inv.Transition(model.StatusDraft)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "archived")
}

func TestSequence_Next(t *testing.T) {
	seq := model.Sequence{Prefix: "FA"}
	jan := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "FA-2026-0001", seq.Next(jan))
	assert.Equal(t, "FA-2026-0002", seq.Next(jan))

	// Counter resets on year change.
	assert.Equal(t, "FA-2027-0001", seq.Next(jan.AddDate(1, 0, 0)))
}
