package checksum_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniss/frenchInvoice/internal/checksum"
)

func TestMod97(t *testing.T) {
	// Small numerals agree with direct modulo arithmetic.
	for _, n := range []int64{0, 1, 96, 97, 98, 12345, 999999999} {
		got, err := checksum.Mod97(fmt.Sprintf("%d", n))
		require.NoError(t, err)
		assert.Equal(t, int(n%97), got, "numeral %d", n)
	}
}

func TestMod97_LongNumeral(t *testing.T) {
	// Rearranged+expanded form of the published test IBAN
	// FR1420041010050500013M02606; valid IBANs leave remainder 1.
	numeral, err := checksum.ExpandLetters("20041010050500013M02606FR14")
	require.NoError(t, err)

	rem, err := checksum.Mod97(numeral)
	require.NoError(t, err)
	assert.Equal(t, 1, rem)
}

func TestMod97_Errors(t *testing.T) {
	_, err := checksum.Mod97("")
	require.Error(t, err)

	_, err = checksum.Mod97("12X4")
	require.Error(t, err)
}

func TestExpandLetters(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FR", "1527"},
		{"A0Z", "10035"},
		{"123", "123"},
	}

	for _, tt := range tests {
		got, err := checksum.ExpandLetters(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := checksum.ExpandLetters("fr14") // lowercase not accepted
	require.Error(t, err)
}

func TestFrenchVatKey(t *testing.T) {
	// 732829320 mod 97 = 43; (12 + 3*43) mod 97 = 44.
	assert.Equal(t, 44, checksum.FrenchVatKey(732829320))
	assert.Equal(t, 12, checksum.FrenchVatKey(0))
	assert.Equal(t, 12, checksum.FrenchVatKey(97))
}
