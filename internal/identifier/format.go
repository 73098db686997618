package identifier

import "strings"

// Formatters are best-effort: input of the wrong length is returned
// unchanged, never padded, and formatting an already formatted value only
// changes whitespace (the functions are idempotent).

// FormatSiren renders a SIREN as three groups of three digits:
// "732829320" -> "732 829 320".
func FormatSiren(siren string) string {
	cleaned := digitsOnly(siren)
	if len(cleaned) != 9 {
		return siren
	}
	return cleaned[:3] + " " + cleaned[3:6] + " " + cleaned[6:]
}

// FormatSiret renders a SIRET as the grouped SIREN plus the 5-digit NIC:
// "73282932000074" -> "732 829 320 00074".
func FormatSiret(siret string) string {
	cleaned := digitsOnly(siret)
	if len(cleaned) != 14 {
		return siret
	}
	return cleaned[:3] + " " + cleaned[3:6] + " " + cleaned[6:9] + " " + cleaned[9:]
}

// FormatVat renders a French VAT number as country code, key and grouped
// SIREN: "FR44732829320" -> "FR 44 732 829 320".
func FormatVat(vat string) string {
	cleaned := alnumUpper(vat)
	if !strings.HasPrefix(cleaned, "FR") || len(cleaned) != 13 {
		return vat
	}
	return "FR " + cleaned[2:4] + " " + FormatSiren(cleaned[4:])
}

// FormatIban renders an IBAN in groups of four characters:
// "FR1420041010050500013M02606" -> "FR14 2004 1010 0505 0001 3M02 606".
func FormatIban(iban string) string {
	cleaned := alnumUpper(iban)
	if len(cleaned) != 27 {
		return iban
	}

	var b strings.Builder
	for i := 0; i < len(cleaned); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(cleaned) {
			end = len(cleaned)
		}
		b.WriteString(cleaned[i:end])
	}
	return b.String()
}

// FormatPhone renders a 10-digit domestic number in pairs:
// "0123456789" -> "01 23 45 67 89".
func FormatPhone(phone string) string {
	cleaned := digitsOnly(phone)
	if len(cleaned) != 10 {
		return phone
	}
	return cleaned[0:2] + " " + cleaned[2:4] + " " + cleaned[4:6] + " " + cleaned[6:8] + " " + cleaned[8:]
}

// FormatPostalCode strips separators from a 5-digit postal code.
func FormatPostalCode(postalCode string) string {
	cleaned := digitsOnly(postalCode)
	if len(cleaned) != 5 {
		return postalCode
	}
	return cleaned
}
