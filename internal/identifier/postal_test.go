package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniss/frenchInvoice/internal/identifier"
)

func TestValidatePostalCode(t *testing.T) {
	tests := []struct {
		input     string
		wantValid bool
	}{
		{"75001", true}, // Paris
		{"01000", true}, // Ain, lowest department
		{"20000", true}, // Ajaccio, Corsica
		{"95880", true}, // highest metropolitan department
		{"97150", true}, // Saint-Martin, overseas
		{"97400", true}, // La Réunion
		{"98000", true}, // 98x overseas collectivities prefix
		{"98800", true}, // Nouméa
		{"96000", false}, // department 96 is unassigned
		{"00100", false}, // department 00 does not exist
		{"7500", false},
		{"750011", false},
		{"", false},
		{"ABCDE", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := identifier.ValidatePostalCode(tt.input)
			assert.Equal(t, tt.wantValid, result.Valid, "postal code %q", tt.input)
		})
	}
}

func TestValidatePostalCode_Whitespace(t *testing.T) {
	result := identifier.ValidatePostalCode(" 75 001 ")
	assert.True(t, result.Valid)
	assert.Equal(t, "75001", result.Cleaned)
}
