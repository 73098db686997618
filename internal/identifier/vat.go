package identifier

import (
	"regexp"
	"strconv"

	"github.com/daniss/frenchInvoice/internal/checksum"
)

// French VAT number: FR + 2 check characters + 9-digit SIREN.
var frenchVatPattern = regexp.MustCompile(`^FR([0-9A-Z]{2})([0-9]{9})$`)

var numericKeyPattern = regexp.MustCompile(`^[0-9]{2}$`)

// ValidateVat validates a French intra-community VAT number
// (TVA intracommunautaire). The embedded SIREN is validated first. A
// numeric key is verified against (12 + 3*(siren mod 97)) mod 97; the
// legacy alphanumeric key scheme is accepted on format alone and the
// result is marked Approximate.
func ValidateVat(vat string) VatResult {
	if vat == "" {
		return VatResult{Err: "VAT number is required"}
	}

	cleaned := alnumUpper(vat)
	m := frenchVatPattern.FindStringSubmatch(cleaned)
	if m == nil {
		result := VatResult{Raw: vat, Vat: cleaned, Err: "invalid French VAT format, expected FR + 2 check digits + 9-digit SIREN"}
		if len(cleaned) >= 2 {
			result.CountryCode = cleaned[:2]
		}
		return result
	}

	key := m[1]
	siren := m[2]

	if sr := ValidateSiren(siren); !sr.Valid {
		return VatResult{
			Raw:         vat,
			Vat:         cleaned,
			CountryCode: "FR",
			CheckDigits: key,
			Siren:       siren,
			Err:         "invalid SIREN in VAT number: " + sr.Err,
		}
	}

	result := VatResult{
		Raw:         vat,
		Vat:         cleaned,
		CountryCode: "FR",
		CheckDigits: key,
		Siren:       siren,
	}

	if numericKeyPattern.MatchString(key) {
		sirenNum, _ := strconv.ParseInt(siren, 10, 64)
		keyNum, _ := strconv.Atoi(key)
		if keyNum != checksum.FrenchVatKey(sirenNum) {
			result.Err = "invalid VAT check digits"
			return result
		}
		result.Valid = true
		return result
	}

	// Legacy alphanumeric key: format-only acceptance.
	result.Valid = true
	result.Approximate = true
	return result
}
