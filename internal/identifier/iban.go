package identifier

import (
	"strings"

	"github.com/daniss/frenchInvoice/internal/checksum"
)

// ValidateIban validates a French IBAN: FR prefix, 27 characters, and an
// ISO 13616 mod-97 check. The first four characters are moved to the end,
// letters are expanded (A=10 .. Z=35) and the resulting numeral must leave
// remainder 1 modulo 97.
func ValidateIban(iban string) IbanResult {
	if iban == "" {
		return IbanResult{Err: "IBAN is required"}
	}

	cleaned := alnumUpper(iban)
	if !strings.HasPrefix(cleaned, "FR") {
		return IbanResult{Raw: iban, Iban: cleaned, Err: "French IBAN must start with FR"}
	}
	if len(cleaned) != 27 {
		return IbanResult{Raw: iban, Iban: cleaned, Err: "French IBAN must be exactly 27 characters"}
	}

	rearranged := cleaned[4:] + cleaned[:4]
	numeral, err := checksum.ExpandLetters(rearranged)
	if err != nil {
		return IbanResult{Raw: iban, Iban: cleaned, Err: "IBAN contains invalid characters"}
	}

	rem, err := checksum.Mod97(numeral)
	if err != nil {
		return IbanResult{Raw: iban, Iban: cleaned, Err: "IBAN contains invalid characters"}
	}

	ok := rem == 1
	result := IbanResult{
		Raw:           iban,
		Valid:         ok,
		Iban:          cleaned,
		ChecksumValid: ok,
	}
	if !ok {
		result.Err = "invalid IBAN checksum"
	}
	return result
}
