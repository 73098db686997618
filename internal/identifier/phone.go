package identifier

import "regexp"

// Accepted French phone forms after cleaning:
//   - 0 + area digit 1-9 + 8 digits (domestic)
//   - 33 + area digit + 8 digits (international without +)
//   - 330 + area digit + 8 digits (international keeping the trunk 0)
//   - +33 + area digit + 8 digits
var frenchPhonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^0[1-9][0-9]{8}$`),
	regexp.MustCompile(`^33[1-9][0-9]{8}$`),
	regexp.MustCompile(`^330[1-9][0-9]{8}$`),
	regexp.MustCompile(`^\+33[1-9][0-9]{8}$`),
}

// ValidatePhone validates a French phone number structurally (there is no
// checksum). Spaces, dots, dashes and parentheses are ignored; a leading
// + is kept.
func ValidatePhone(phone string) CheckResult {
	if phone == "" {
		return CheckResult{Err: "phone number is required"}
	}

	cleaned := cleanPhone(phone)
	for _, p := range frenchPhonePatterns {
		if p.MatchString(cleaned) {
			return CheckResult{Raw: phone, Valid: true, Cleaned: cleaned}
		}
	}

	return CheckResult{Raw: phone, Cleaned: cleaned, Err: "not a valid French phone number"}
}

// cleanPhone strips separators, keeping digits and a leading +.
func cleanPhone(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			out = append(out, c)
		} else if c == '+' && len(out) == 0 {
			out = append(out, c)
		}
	}
	return string(out)
}
