package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniss/frenchInvoice/internal/model"
)

func TestIssuer_New(t *testing.T) {
	issuer := model.NewIssuer("FA", "EUR", decimal.NewFromFloat(0.20))
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	first := issuer.New(now)
	second := issuer.New(now)

	assert.Equal(t, "FA-2026-0001", first.Number)
	assert.Equal(t, "FA-2026-0002", second.Number)
	assert.Equal(t, "EUR", first.Currency)
	assert.Equal(t, model.StatusDraft, first.Status)
}

func TestIssuer_NewLineCarriesDefaultRate(t *testing.T) {
	issuer := model.NewIssuer("FA", "EUR", decimal.NewFromFloat(0.055))

	line := issuer.NewLine("Livres", decimal.NewFromInt(2), 1000)
	line.ComputeAmounts()

	require.NotEmpty(t, line.ID)
	assert.Equal(t, model.VatStandard, line.VatCategory)
	assert.Equal(t, int64(2000), line.NetCents)
	assert.Equal(t, int64(110), line.TaxCents)
}
