package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniss/frenchInvoice/internal/model"
)

func TestCompany_ValidateIdentifiers(t *testing.T) {
	c := model.NewCompany("Exemple SARL")
	c.SetSiren("732829320")
	c.SetSiret("73282932000074")
	c.SetVatNumber("FR44732829320")

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	result := c.ValidateIdentifiers(now)

	assert.True(t, result.Valid)
	assert.True(t, c.SirenVerified)
	assert.True(t, c.SiretVerified)
	assert.True(t, c.VatVerified)
	require.NotNil(t, c.LastCheckedAt)
	assert.Equal(t, now, *c.LastCheckedAt)
}

func TestCompany_SettersResetVerification(t *testing.T) {
	c := model.NewCompany("Exemple SARL")
	c.SetSiren("732829320")
	c.SetSiret("73282932000074")
	c.SetVatNumber("FR44732829320")
	c.ValidateIdentifiers(time.Now())
	require.True(t, c.SirenVerified)

	// A new SIREN invalidates everything derived from it.
	c.SetSiren("552100554")
	assert.False(t, c.SirenVerified)
	assert.False(t, c.SiretVerified)
	assert.False(t, c.VatVerified)
}

func TestCompany_MismatchBlocksVerification(t *testing.T) {
	c := model.NewCompany("Exemple SARL")
	c.SetSiren("552100554")
	c.SetSiret("73282932000074")

	result := c.ValidateIdentifiers(time.Now())

	assert.False(t, result.Valid)
	assert.True(t, c.SirenVerified, "the SIREN itself is valid")
	assert.False(t, c.SiretVerified, "mismatched SIRET must not verify")
}

func TestAmountError(t *testing.T) {
	err := model.NewAmountError("unit_price_cents", -5, "must not be negative")
	assert.Contains(t, err.Error(), "unit_price_cents")
	assert.Contains(t, err.Error(), "-5")
}
