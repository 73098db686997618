package checksum

import (
	"fmt"
	"strings"
)

// Mod97 computes the remainder modulo 97 of an arbitrarily long decimal
// numeral. The remainder is folded in digit by digit, so numerals far
// beyond the int64 range (IBAN rearrangements reach 30+ digits) are
// handled without big-integer arithmetic.
func Mod97(numeral string) (int, error) {
	if numeral == "" {
		return 0, fmt.Errorf("checksum: empty numeral")
	}

	r := 0
	for i := 0; i < len(numeral); i++ {
		c := numeral[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("checksum: non-digit character %q at position %d", c, i)
		}
		r = (r*10 + int(c-'0')) % 97
	}

	return r, nil
}

// ExpandLetters rewrites an alphanumeric string as a decimal numeral,
// substituting each letter with its ISO 13616 value (A=10 .. Z=35).
// Digits pass through unchanged; any other character is an error.
func ExpandLetters(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s) * 2)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			fmt.Fprintf(&b, "%d", int(c-'A')+10)
		default:
			return "", fmt.Errorf("checksum: invalid character %q at position %d", c, i)
		}
	}

	return b.String(), nil
}

// FrenchVatKey returns the two-digit numeric key expected in a French VAT
// number for the given SIREN: (12 + 3*(siren mod 97)) mod 97.
func FrenchVatKey(siren int64) int {
	return int((12 + 3*(siren%97)) % 97)
}
