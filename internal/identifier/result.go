// Package identifier validates and formats French business identifiers:
// SIREN, SIRET, intra-community VAT numbers, IBANs, postal codes and
// phone numbers.
//
// Validators never panic and never return a bare boolean: each produces a
// result value carrying the cleaned form, the validity and checksum flags,
// and an explanatory message on failure. Results are value objects; a new
// one is produced per call and never mutated afterwards.
package identifier

// SirenResult is the outcome of validating a SIREN.
type SirenResult struct {
	Raw           string `json:"raw,omitempty"`
	Valid         bool   `json:"is_valid"`
	Siren         string `json:"formatted_siren"` // cleaned 9-digit form
	ChecksumValid bool   `json:"checksum_valid"`
	Err           string `json:"error,omitempty"`
}

// SiretResult is the outcome of validating a SIRET.
type SiretResult struct {
	Raw                 string `json:"raw,omitempty"`
	Valid               bool   `json:"is_valid"`
	Siret               string `json:"formatted_siret"` // cleaned 14-digit form
	Siren               string `json:"siren"`
	EstablishmentNumber string `json:"establishment_number"` // 5-digit NIC
	ChecksumValid       bool   `json:"checksum_valid"`
	Err                 string `json:"error,omitempty"`
}

// VatResult is the outcome of validating a French intra-community VAT
// number. Approximate is set when the legacy alphanumeric key scheme was
// encountered: only the format is checked, not the key arithmetic.
type VatResult struct {
	Raw         string `json:"raw,omitempty"`
	Valid       bool   `json:"is_valid"`
	Vat         string `json:"formatted_vat"` // cleaned uppercase form
	CountryCode string `json:"country_code"`
	CheckDigits string `json:"check_digits"`
	Siren       string `json:"siren"`
	Approximate bool   `json:"approximate,omitempty"`
	Err         string `json:"error,omitempty"`
}

// IbanResult is the outcome of validating a French IBAN.
type IbanResult struct {
	Raw           string `json:"raw,omitempty"`
	Valid         bool   `json:"is_valid"`
	Iban          string `json:"formatted_iban"` // cleaned uppercase form
	ChecksumValid bool   `json:"checksum_valid"`
	Err           string `json:"error,omitempty"`
}

// CheckResult is the outcome of the structural validators (postal code,
// phone) that have no checksum component.
type CheckResult struct {
	Raw     string `json:"raw,omitempty"`
	Valid   bool   `json:"is_valid"`
	Cleaned string `json:"cleaned"`
	Err     string `json:"error,omitempty"`
}

// digitsOnly strips every non-digit byte from s.
func digitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// alnumUpper strips every non-alphanumeric byte and uppercases letters.
func alnumUpper(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z':
			out = append(out, c)
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		}
	}
	return string(out)
}

// allSameDigit reports whether s consists of a single repeated digit.
func allSameDigit(s string) bool {
	if s == "" {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
