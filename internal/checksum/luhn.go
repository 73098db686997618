// Package checksum implements the digit-check primitives behind French
// business identifiers: the Luhn mod-10 algorithm used by SIREN and SIRET,
// and modulo-97 arithmetic used by VAT keys and IBANs.
package checksum

import "fmt"

// LuhnSum computes the Luhn digit sum of a numeric string.
//
// Digits are processed right to left. When doubleOddFromRight is true the
// digits at odd positions counted from the right (the second-rightmost,
// fourth-rightmost, ...) are doubled; when false the even positions
// (including the rightmost) are doubled instead. A doubled digit above 9
// is reduced by subtracting 9, which equals the sum of its decimal digits.
func LuhnSum(digits string, doubleOddFromRight bool) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("checksum: empty input")
	}

	sum := 0
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("checksum: non-digit character %q at position %d", c, i)
		}

		d := int(c - '0')
		pos := len(digits) - 1 - i
		if (pos%2 == 1) == doubleOddFromRight {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	return sum, nil
}

// LuhnValid reports whether the numeric string passes the standard Luhn
// mod-10 check: odd positions from the right doubled, total divisible by
// ten. This is the canonical rule for both SIREN (9 digits) and SIRET
// (14 digits).
func LuhnValid(digits string) bool {
	sum, err := LuhnSum(digits, true)
	if err != nil {
		return false
	}
	return sum%10 == 0
}
