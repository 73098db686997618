package identifier

import "github.com/daniss/frenchInvoice/internal/checksum"

// ValidateSiren validates a French SIREN, the 9-digit company registration
// number. Spaces and punctuation in the input are ignored. Sequences of a
// single repeated digit (e.g. 111111111) are rejected even when the Luhn
// check would coincidentally pass.
func ValidateSiren(siren string) SirenResult {
	if siren == "" {
		return SirenResult{Err: "SIREN is required"}
	}

	cleaned := digitsOnly(siren)
	if len(cleaned) != 9 {
		return SirenResult{Raw: siren, Siren: cleaned, Err: "SIREN must be exactly 9 digits"}
	}

	if allSameDigit(cleaned) {
		return SirenResult{Raw: siren, Siren: cleaned, Err: "SIREN cannot be all same digits"}
	}

	ok := checksum.LuhnValid(cleaned)
	result := SirenResult{
		Raw:           siren,
		Valid:         ok,
		Siren:         cleaned,
		ChecksumValid: ok,
	}
	if !ok {
		result.Err = "invalid SIREN checksum"
	}
	return result
}
