// Package frenchlib provides a public API for validating French business
// identifiers and EN 16931 invoice documents.
//
// This package exposes the core types and functions for SIREN, SIRET,
// VAT, IBAN, postal-code and phone validation, the cross-field business
// checker, the invoice model and the e-invoicing mandate deadlines.
//
// Example usage:
//
//	result := frenchlib.ValidateSiren("732 829 320")
//	if result.Valid {
//	    fmt.Println(frenchlib.FormatSiren(result.Siren))
//	}
package frenchlib

import (
	"github.com/daniss/frenchInvoice/internal/compliance"
	"github.com/daniss/frenchInvoice/internal/identifier"
	"github.com/daniss/frenchInvoice/internal/model"
	"github.com/daniss/frenchInvoice/internal/validation"
)

// Re-export identifier result types
type (
	SirenResult = identifier.SirenResult
	SiretResult = identifier.SiretResult
	VatResult   = identifier.VatResult
	IbanResult  = identifier.IbanResult
	CheckResult = identifier.CheckResult
)

// Re-export identifier validators
var (
	ValidateSiren      = identifier.ValidateSiren
	ValidateSiret      = identifier.ValidateSiret
	ValidateVat        = identifier.ValidateVat
	ValidateIban       = identifier.ValidateIban
	ValidatePostalCode = identifier.ValidatePostalCode
	ValidatePhone      = identifier.ValidatePhone
)

// Re-export display formatters
var (
	FormatSiren      = identifier.FormatSiren
	FormatSiret      = identifier.FormatSiret
	FormatVat        = identifier.FormatVat
	FormatIban       = identifier.FormatIban
	FormatPostalCode = identifier.FormatPostalCode
	FormatPhone      = identifier.FormatPhone
)

// Re-export cross-field validation
type (
	BusinessData = validation.BusinessData
	FieldError   = validation.FieldError
	Result       = validation.Result
)

var ValidateBusinessData = validation.ValidateBusinessData

// Re-export stable error codes
const (
	CodeInvalidSiren       = validation.CodeInvalidSiren
	CodeInvalidSiret       = validation.CodeInvalidSiret
	CodeSiretSirenMismatch = validation.CodeSiretSirenMismatch
	CodeInvalidVat         = validation.CodeInvalidVat
	CodeVatSirenMismatch   = validation.CodeVatSirenMismatch
	CodeInvalidPostalCode  = validation.CodeInvalidPostalCode
	CodeInvalidPhone       = validation.CodeInvalidPhone
)

// Re-export the invoice model
type (
	Invoice             = model.Invoice
	Line                = model.Line
	Company             = model.Company
	Issuer              = model.Issuer
	Address             = model.Address
	VatBreakdownEntry   = model.VatBreakdownEntry
	PaymentInstructions = model.PaymentInstructions
	Sequence            = model.Sequence
	Status              = model.Status
	Level               = model.Level
	VatCategory         = model.VatCategory
)

var (
	NewInvoice = model.NewInvoice
	NewCompany = model.NewCompany
	NewIssuer  = model.NewIssuer
)

// Re-export lifecycle states
const (
	StatusDraft     = model.StatusDraft
	StatusValidated = model.StatusValidated
	StatusSent      = model.StatusSent
	StatusPaid      = model.StatusPaid
	StatusCancelled = model.StatusCancelled
	StatusArchived  = model.StatusArchived
)

// Re-export VAT categories
const (
	VatStandard      = model.VatStandard
	VatZeroRated     = model.VatZeroRated
	VatExempt        = model.VatExempt
	VatReverseCharge = model.VatReverseCharge
)

// Re-export compliance deadline resolution
type (
	Obligation = compliance.Obligation
	Rules      = compliance.Rules
	Segment    = compliance.Segment
)

var (
	DefaultRules = compliance.DefaultRules
	NewResolver  = compliance.NewResolver
)
