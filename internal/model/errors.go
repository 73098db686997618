package model

import (
	"fmt"

	"github.com/daniss/frenchInvoice/internal/validation"
)

// TransitionError represents a disallowed lifecycle move
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition invoice from %s to %s", e.From, e.To)
}

// InvariantError wraps a failed validation result for callers that need
// an error value at a lifecycle boundary. The structured result stays
// attached so codes are not lost.
type InvariantError struct {
	Result *validation.Result
}

func (e *InvariantError) Error() string {
	n := len(e.Result.Errors)
	if n == 0 {
		return "invoice invariants failed"
	}
	first := e.Result.Errors[0]
	if n == 1 {
		return fmt.Sprintf("invoice invariant failed: %s (%s)", first.Code, first.Field)
	}
	return fmt.Sprintf("invoice invariants failed: %s (%s) and %d more", first.Code, first.Field, n-1)
}

// AmountError represents an out-of-range or malformed amount
type AmountError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *AmountError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("invalid amount on %s: %s (value=%v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("invalid amount on %s: %s", e.Field, e.Message)
}

// NewAmountError creates a new amount error
func NewAmountError(field string, value interface{}, message string) *AmountError {
	return &AmountError{Field: field, Value: value, Message: message}
}
