package identifier

import "regexp"

// French postal codes: metropolitan departments 01-95 followed by three
// digits, or the 97x/98x overseas prefixes followed by two digits.
// Department 96 is unassigned and rejected.
var frenchPostalPattern = regexp.MustCompile(`^(?:(?:0[1-9]|[1-8][0-9]|9[0-5])[0-9]{3}|9[78][0-9]{3})$`)

// ValidatePostalCode validates a French postal code. Whitespace in the
// input is ignored.
func ValidatePostalCode(postalCode string) CheckResult {
	if postalCode == "" {
		return CheckResult{Err: "postal code is required"}
	}

	cleaned := digitsOnly(postalCode)
	if len(cleaned) != 5 {
		return CheckResult{Raw: postalCode, Cleaned: cleaned, Err: "postal code must be exactly 5 digits"}
	}

	if !frenchPostalPattern.MatchString(cleaned) {
		return CheckResult{Raw: postalCode, Cleaned: cleaned, Err: "unknown French department in postal code"}
	}

	return CheckResult{Raw: postalCode, Valid: true, Cleaned: cleaned}
}
