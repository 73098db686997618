// Package model holds the invoice domain: trading parties, EN 16931
// invoice documents and their arithmetic invariants. Amounts are integer
// cents; decimals appear only transiently inside computations.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/daniss/frenchInvoice/internal/identifier"
	"github.com/daniss/frenchInvoice/internal/validation"
)

// Address is a French postal address.
type Address struct {
	Street      string `json:"street,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	City        string `json:"city,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// Company is the party aggregate invoices reference. It carries the
// fields the compliance rules need (size, revenue, sector) along with
// verification state for each identifier. Invoices hold shared pointers
// to companies, so a correction here is visible on every document that
// references it.
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	LegalForm string    `json:"legal_form,omitempty"`

	Siren     string `json:"siren,omitempty"`
	Siret     string `json:"siret,omitempty"`
	VatNumber string `json:"vat_number,omitempty"`

	Address Address `json:"address,omitempty"`
	Email   string  `json:"email,omitempty"`
	Phone   string  `json:"phone,omitempty"`

	IsPublicSector     bool  `json:"is_public_sector"`
	EmployeeCount      int   `json:"employee_count,omitempty"`
	AnnualRevenueCents int64 `json:"annual_revenue_cents,omitempty"`

	// Verification flags. A flag is true only after ValidateIdentifiers
	// has seen the current value pass; changing an identifier clears its
	// flag.
	SirenVerified bool       `json:"siren_verified"`
	SiretVerified bool       `json:"siret_verified"`
	VatVerified   bool       `json:"vat_verified"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCompany creates a company with a fresh ID.
func NewCompany(name string) *Company {
	now := time.Now().UTC()
	return &Company{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetSiren replaces the SIREN and clears its verification flag. The SIRET
// and VAT flags are cleared too since both embed the SIREN.
func (c *Company) SetSiren(siren string) {
	c.Siren = siren
	c.SirenVerified = false
	c.SiretVerified = false
	c.VatVerified = false
	c.UpdatedAt = time.Now().UTC()
}

// SetSiret replaces the SIRET and clears its verification flag.
func (c *Company) SetSiret(siret string) {
	c.Siret = siret
	c.SiretVerified = false
	c.UpdatedAt = time.Now().UTC()
}

// SetVatNumber replaces the VAT number and clears its verification flag.
func (c *Company) SetVatNumber(vat string) {
	c.VatNumber = vat
	c.VatVerified = false
	c.UpdatedAt = time.Now().UTC()
}

// ValidateIdentifiers runs the cross-field checks over the company's
// identifiers, records which ones verified, and returns the full result.
// Warnings (phone format, missing advisory fields) never block
// verification.
func (c *Company) ValidateIdentifiers(now time.Time) *validation.Result {
	result := validation.ValidateBusinessData(validation.BusinessData{
		Siren:       c.Siren,
		Siret:       c.Siret,
		VatNumber:   c.VatNumber,
		PostalCode:  c.Address.PostalCode,
		Phone:       c.Phone,
		Email:       c.Email,
		CompanyName: c.Name,
		Address:     c.Address.Street,
	})

	c.SirenVerified = c.Siren != "" && identifier.ValidateSiren(c.Siren).Valid
	c.SiretVerified = c.Siret != "" && identifier.ValidateSiret(c.Siret).Valid &&
		!result.HasCode(validation.CodeSiretSirenMismatch)
	c.VatVerified = c.VatNumber != "" && identifier.ValidateVat(c.VatNumber).Valid &&
		!result.HasCode(validation.CodeVatSirenMismatch)

	checked := now.UTC()
	c.LastCheckedAt = &checked
	c.UpdatedAt = checked
	return result
}
