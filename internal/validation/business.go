package validation

import (
	"regexp"
	"strings"

	"github.com/daniss/frenchInvoice/internal/identifier"
)

// BusinessData is a bundle of French business fields validated together.
// Every field is optional except where noted; empty fields are skipped.
type BusinessData struct {
	Siren       string `json:"siren,omitempty"`
	Siret       string `json:"siret,omitempty"`
	VatNumber   string `json:"vat_number,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Address     string `json:"address,omitempty"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateBusinessData runs each present field through its validator and
// then applies the cross-field checks: a SIRET must embed the declared
// SIREN and a VAT number must embed it too. Identifier and postal-code
// failures are errors; a phone-format failure is only a warning.
//
// The embedding checks compare cleaned digit strings and run whether or
// not the individual fields validate, so a SIRET that does not start with
// the declared SIREN always yields SIRET_SIREN_MISMATCH.
func ValidateBusinessData(data BusinessData) *Result {
	result := NewResult()

	if data.Siren != "" {
		if sr := identifier.ValidateSiren(data.Siren); !sr.Valid {
			result.AddError("siren", CodeInvalidSiren, "Le numéro SIREN est invalide")
		}
	}

	if data.Siret != "" {
		if sr := identifier.ValidateSiret(data.Siret); !sr.Valid {
			result.AddError("siret", CodeInvalidSiret, "Le numéro SIRET est invalide")
		}
		if data.Siren != "" && !embedsSiren(data.Siret, data.Siren) {
			result.AddError("siret", CodeSiretSirenMismatch, "Le SIRET doit contenir le même numéro SIREN")
		}
	}

	if data.VatNumber != "" {
		vr := identifier.ValidateVat(data.VatNumber)
		if !vr.Valid {
			result.AddError("vat_number", CodeInvalidVat, "Le numéro de TVA intracommunautaire français est invalide")
		}
		if data.Siren != "" && vr.Siren != "" && vr.Siren != cleanDigits(data.Siren) {
			result.AddError("vat_number", CodeVatSirenMismatch, "Le numéro de TVA doit contenir le même numéro SIREN")
		}
	}

	if data.PostalCode != "" {
		if pr := identifier.ValidatePostalCode(data.PostalCode); !pr.Valid {
			result.AddError("postal_code", CodeInvalidPostalCode, "Le code postal français est invalide")
		}
	}

	if data.Phone != "" {
		if pr := identifier.ValidatePhone(data.Phone); !pr.Valid {
			result.AddWarning("phone", CodeInvalidPhone, "Le format du numéro de téléphone semble invalide pour la France")
		}
	}

	if data.Email != "" && !emailPattern.MatchString(data.Email) {
		result.AddError("email", CodeInvalidEmail, "L'adresse email est invalide")
	}

	if data.CompanyName != "" && len(strings.TrimSpace(data.CompanyName)) < 2 {
		result.AddError("company_name", CodeCompanyNameShort, "La raison sociale doit contenir au moins 2 caractères")
	}

	if data.Address != "" && len(strings.TrimSpace(data.Address)) < 5 {
		result.AddError("address", CodeAddressIncomplete, "L'adresse doit être complète")
	}

	if data.Siren == "" && data.Siret == "" {
		result.AddWarning("siren", CodeMissingIdentifier, "Il est recommandé de fournir un numéro SIREN ou SIRET")
	}
	if data.VatNumber == "" {
		result.AddWarning("vat_number", CodeMissingVat, "Le numéro de TVA intracommunautaire est recommandé pour les échanges européens")
	}

	return result
}

// embedsSiren reports whether the SIRET's leading digits equal the SIREN,
// comparing cleaned forms.
func embedsSiren(siret, siren string) bool {
	cleanSiret := cleanDigits(siret)
	cleanSiren := cleanDigits(siren)
	if cleanSiren == "" || len(cleanSiret) < len(cleanSiren) {
		return false
	}
	return strings.HasPrefix(cleanSiret, cleanSiren)
}

func cleanDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
