// Package validation aggregates field-level checks into structured
// results with stable machine-readable error codes. Failures are always
// returned as data, never as panics or error values: the worst outcome of
// any check is a Result with Valid == false and an explanatory code.
package validation

// Severity classifies a field error.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Error and warning codes. Codes are a stable contract: callers match on
// Code and must never parse Message, which is human-readable French and
// free to change.
const (
	CodeInvalidSiren       = "INVALID_SIREN"
	CodeInvalidSiret       = "INVALID_SIRET"
	CodeSiretSirenMismatch = "SIRET_SIREN_MISMATCH"
	CodeInvalidVat         = "INVALID_VAT"
	CodeVatSirenMismatch   = "VAT_SIREN_MISMATCH"
	CodeInvalidPostalCode  = "INVALID_POSTAL_CODE"
	CodeInvalidPhone       = "INVALID_PHONE"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeCompanyNameShort   = "COMPANY_NAME_TOO_SHORT"
	CodeAddressIncomplete  = "ADDRESS_INCOMPLETE"

	// Advisory warnings.
	CodeMissingIdentifier = "MISSING_IDENTIFIER"
	CodeMissingVat        = "MISSING_VAT"

	// Invoice model invariants.
	CodeMissingField         = "MISSING_MANDATORY_FIELD"
	CodeTotalMismatch        = "TOTAL_MISMATCH"
	CodeLineSumMismatch      = "LINE_SUM_MISMATCH"
	CodeVatBreakdownMismatch = "VAT_BREAKDOWN_MISMATCH"
	CodeEmptyVatBreakdown    = "EMPTY_VAT_BREAKDOWN"
	CodeUnknownVatCategory   = "UNKNOWN_VAT_CATEGORY"
	CodePaidExceedsTotal     = "PAID_EXCEEDS_TOTAL"
)

// FieldError describes one failed check on one field.
type FieldError struct {
	Field    string   `json:"field"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Result aggregates errors and warnings from a validation pass.
// Invariant: Valid is true exactly when Errors is empty; warnings never
// affect validity.
type Result struct {
	Valid    bool         `json:"is_valid"`
	Errors   []FieldError `json:"errors"`
	Warnings []FieldError `json:"warnings"`
}

// NewResult returns an empty, valid result.
func NewResult() *Result {
	return &Result{
		Valid:    true,
		Errors:   []FieldError{},
		Warnings: []FieldError{},
	}
}

// AddError records an error and marks the result invalid.
func (r *Result) AddError(field, code, message string) {
	r.Errors = append(r.Errors, FieldError{
		Field:    field,
		Code:     code,
		Message:  message,
		Severity: SeverityError,
	})
	r.Valid = false
}

// AddWarning records a warning; validity is unaffected.
func (r *Result) AddWarning(field, code, message string) {
	r.Warnings = append(r.Warnings, FieldError{
		Field:    field,
		Code:     code,
		Message:  message,
		Severity: SeverityWarning,
	})
}

// Merge folds another result into this one.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	if !other.Valid {
		r.Valid = false
	}
}

// HasCode reports whether an error or warning with the given code is
// present.
func (r *Result) HasCode(code string) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
