package server

import (
	"github.com/daniss/frenchInvoice/internal/model"
	"github.com/daniss/frenchInvoice/internal/validation"
)

// FormatResponse is the response for format endpoints
type FormatResponse struct {
	Input     string `json:"input"`
	Formatted string `json:"formatted"`
}

// InvoiceRequest is the request for the invoice validation endpoint.
// When Recompute is set the line amounts and totals are derived before
// validation instead of being taken as submitted.
type InvoiceRequest struct {
	Invoice   model.Invoice `json:"invoice"`
	Recompute bool          `json:"recompute,omitempty"`
}

// InvoiceResponse is the response for the invoice validation endpoint
type InvoiceResponse struct {
	Invoice model.Invoice      `json:"invoice"`
	Result  *validation.Result `json:"result"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
