// Package lookup defines the ports to external reference data: the
// postal-code directory and the business registry. The library ships
// static in-memory implementations; callers wanting live data (INSEE
// Sirene, La Poste) implement the same interfaces.
package lookup

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a directory has no entry for the key.
var ErrNotFound = errors.New("lookup: not found")

// City is a postal-code directory entry. A postal code can cover
// several communes; Name is the main one.
type City struct {
	PostalCode string `json:"postal_code"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// CityDirectory resolves postal codes to cities.
type CityDirectory interface {
	City(ctx context.Context, postalCode string) (City, error)
}

// RegistryEntry is what a business registry returns for a SIREN.
type RegistryEntry struct {
	Siren        string     `json:"siren"`
	Name         string     `json:"name"`
	LegalForm    string     `json:"legal_form,omitempty"`
	Active       bool       `json:"active"`
	RegisteredAt *time.Time `json:"registered_at,omitempty"`
}

// BusinessRegistry resolves SIRENs to registry entries.
type BusinessRegistry interface {
	Lookup(ctx context.Context, siren string) (RegistryEntry, error)
}
