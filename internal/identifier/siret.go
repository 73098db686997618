package identifier

import "github.com/daniss/frenchInvoice/internal/checksum"

// ValidateSiret validates a French SIRET, the 14-digit establishment
// identifier made of a SIREN followed by a 5-digit NIC. The embedded
// SIREN is validated first; only when it passes is the full 14-digit
// Luhn check applied.
func ValidateSiret(siret string) SiretResult {
	if siret == "" {
		return SiretResult{Err: "SIRET is required"}
	}

	cleaned := digitsOnly(siret)
	if len(cleaned) != 14 {
		result := SiretResult{Raw: siret, Siret: cleaned, Err: "SIRET must be exactly 14 digits"}
		if len(cleaned) > 9 {
			result.Siren = cleaned[:9]
			result.EstablishmentNumber = cleaned[9:]
		} else {
			result.Siren = cleaned
		}
		return result
	}

	siren := cleaned[:9]
	establishment := cleaned[9:]

	if sr := ValidateSiren(siren); !sr.Valid {
		return SiretResult{
			Raw:                 siret,
			Siret:               cleaned,
			Siren:               siren,
			EstablishmentNumber: establishment,
			Err:                 "invalid SIREN in SIRET: " + sr.Err,
		}
	}

	ok := checksum.LuhnValid(cleaned)
	result := SiretResult{
		Raw:                 siret,
		Valid:               ok,
		Siret:               cleaned,
		Siren:               siren,
		EstablishmentNumber: establishment,
		ChecksumValid:       ok,
	}
	if !ok {
		result.Err = "invalid SIRET checksum"
	}
	return result
}
