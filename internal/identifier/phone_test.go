package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniss/frenchInvoice/internal/identifier"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		input     string
		wantValid bool
	}{
		{"0123456789", true},
		{"01 23 45 67 89", true},
		{"01.23.45.67.89", true},
		{"06-12-34-56-78", true},
		{"33123456789", true},   // international without +
		{"330123456789", true},  // international keeping the trunk 0
		{"+33123456789", true},
		{"+33 6 12 34 56 78", true},
		{"0023456789", false}, // area digit cannot be 0
		{"123456789", false},  // missing leading 0
		{"01234567890", false},
		{"+34123456789", false}, // not France
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := identifier.ValidatePhone(tt.input)
			assert.Equal(t, tt.wantValid, result.Valid, "phone %q", tt.input)
		})
	}
}

func TestValidatePhone_Cleaned(t *testing.T) {
	result := identifier.ValidatePhone("+33 (0)6 12 34 56 78")
	// The parenthesized trunk 0 survives cleaning; this form is rejected
	// rather than guessed at.
	assert.Equal(t, "+330612345678", result.Cleaned)
	assert.False(t, result.Valid)
}
