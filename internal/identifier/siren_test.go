package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniss/frenchInvoice/internal/identifier"
)

func TestValidateSiren(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantErr   string
	}{
		{"valid siren", "732829320", true, ""},
		{"valid with spaces", "732 829 320", true, ""},
		{"valid with dots", "732.829.320", true, ""},
		{"empty", "", false, "SIREN is required"},
		{"too short", "12345678", false, "SIREN must be exactly 9 digits"},
		{"too long", "7328293200", false, "SIREN must be exactly 9 digits"},
		{"bad checksum", "732829321", false, "invalid SIREN checksum"},
		{"all same digits", "111111111", false, "SIREN cannot be all same digits"},
		{"all zeros", "000000000", false, "SIREN cannot be all same digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := identifier.ValidateSiren(tt.input)
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantValid, result.ChecksumValid)
			assert.Equal(t, tt.wantErr, result.Err)
		})
	}
}

func TestValidateSiren_CleanedForm(t *testing.T) {
	result := identifier.ValidateSiren("732 829 320")
	assert.Equal(t, "732829320", result.Siren)
	assert.Equal(t, "732 829 320", result.Raw)
}

func TestValidateSiren_AllSameDigitsNeverValid(t *testing.T) {
	// Repeated-digit sequences are rejected before the checksum runs, so
	// even 000000000 (whose Luhn sum is zero) comes back invalid.
	for d := byte('0'); d <= '9'; d++ {
		s := string([]byte{d, d, d, d, d, d, d, d, d})
		result := identifier.ValidateSiren(s)
		assert.False(t, result.Valid, "siren %s", s)
	}
}
