package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniss/frenchInvoice/internal/identifier"
)

func TestValidateSiret(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantErr   string
	}{
		{"valid siret", "73282932000074", true, ""},
		{"valid with spaces", "732 829 320 00074", true, ""},
		{"empty", "", false, "SIRET is required"},
		{"wrong length", "732829320", false, "SIRET must be exactly 14 digits"},
		{"bad establishment checksum", "73282932000012", false, "invalid SIRET checksum"},
		{"bad embedded siren", "73282932100074", false, "invalid SIREN in SIRET: invalid SIREN checksum"},
		{"all-same embedded siren", "11111111100000", false, "invalid SIREN in SIRET: SIREN cannot be all same digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := identifier.ValidateSiret(tt.input)
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantErr, result.Err)
		})
	}
}

func TestValidateSiret_Parts(t *testing.T) {
	result := identifier.ValidateSiret("73282932000074")
	assert.Equal(t, "732829320", result.Siren)
	assert.Equal(t, "00074", result.EstablishmentNumber)
	assert.Equal(t, "73282932000074", result.Siret)
}
