package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniss/frenchInvoice/internal/checksum"
)

func TestLuhnSum(t *testing.T) {
	tests := []struct {
		name      string
		digits    string
		doubleOdd bool
		want      int
	}{
		{"single digit no doubling", "5", true, 5},
		{"single digit doubled", "5", false, 10 - 9},
		{"two digits odd doubled", "18", true, 10}, // 2*1 + 8
		{"known siren", "732829320", true, 40},
		{"known siret", "73282932000074", true, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := checksum.LuhnSum(tt.digits, tt.doubleOdd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sum)
		})
	}
}

func TestLuhnSum_RejectsNonDigits(t *testing.T) {
	_, err := checksum.LuhnSum("12a45", true)
	require.Error(t, err)

	_, err = checksum.LuhnSum("", true)
	require.Error(t, err)
}

func TestLuhnSum_Families(t *testing.T) {
	// The direct-sum family (sum % 10 == 0) and the check-digit family
	// (compute the last digit from the leading digits) must agree: for a
	// 9-digit number, summing the first 8 digits with even positions
	// doubled and comparing (10 - sum%10) % 10 against the last digit is
	// the same test as the full-length sum being divisible by ten.
	siren := "732829320"

	full, err := checksum.LuhnSum(siren, true)
	require.NoError(t, err)
	assert.Equal(t, 0, full%10)

	head, err := checksum.LuhnSum(siren[:8], false)
	require.NoError(t, err)
	check := (10 - head%10) % 10
	assert.Equal(t, int(siren[8]-'0'), check)
}

func TestLuhnValid(t *testing.T) {
	tests := []struct {
		digits string
		want   bool
	}{
		{"732829320", true},  // published valid SIREN
		{"732829321", false}, // last digit flipped
		{"73282932000074", true},
		{"73282932000012", false},
		{"0", true},
		{"1", false},
		{"12a456789", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, checksum.LuhnValid(tt.digits), "digits %q", tt.digits)
	}
}
