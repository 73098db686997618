package lookup

import (
	"context"

	"github.com/daniss/frenchInvoice/internal/identifier"
)

// StaticCityDirectory is an in-memory CityDirectory seeded with a
// fixture set, usable in tests and offline deployments.
type StaticCityDirectory struct {
	cities map[string]City
}

// NewStaticCityDirectory builds a directory from the given entries.
// Nil entries gets the built-in fixture set.
func NewStaticCityDirectory(entries []City) *StaticCityDirectory {
	if entries == nil {
		entries = defaultCities
	}
	m := make(map[string]City, len(entries))
	for _, c := range entries {
		m[c.PostalCode] = c
	}
	return &StaticCityDirectory{cities: m}
}

// City resolves a postal code. Codes that fail validation are not found,
// so callers get one behavior for "malformed" and "unknown". The map is
// keyed by the cleaned form, so separators in the input are tolerated.
func (d *StaticCityDirectory) City(_ context.Context, postalCode string) (City, error) {
	pr := identifier.ValidatePostalCode(postalCode)
	if !pr.Valid {
		return City{}, ErrNotFound
	}
	c, ok := d.cities[pr.Cleaned]
	if !ok {
		return City{}, ErrNotFound
	}
	return c, nil
}

var defaultCities = []City{
	{PostalCode: "75001", Name: "Paris", Department: "75"},
	{PostalCode: "69001", Name: "Lyon", Department: "69"},
	{PostalCode: "13001", Name: "Marseille", Department: "13"},
	{PostalCode: "20000", Name: "Ajaccio", Department: "2A"},
	{PostalCode: "97150", Name: "Saint-Martin", Department: "978"},
	{PostalCode: "98000", Name: "Monaco", Department: "98"},
}

// StaticBusinessRegistry is an in-memory BusinessRegistry keyed by
// cleaned SIREN.
type StaticBusinessRegistry struct {
	entries map[string]RegistryEntry
}

// NewStaticBusinessRegistry builds a registry from the given entries.
// Nil entries gets the built-in fixture set.
func NewStaticBusinessRegistry(entries []RegistryEntry) *StaticBusinessRegistry {
	if entries == nil {
		entries = defaultRegistry
	}
	m := make(map[string]RegistryEntry, len(entries))
	for _, e := range entries {
		m[e.Siren] = e
	}
	return &StaticBusinessRegistry{entries: m}
}

var defaultRegistry = []RegistryEntry{
	{Siren: "732829320", Name: "Exemple SARL", LegalForm: "SARL", Active: true},
	{Siren: "552100554", Name: "Compagnie Générale SA", LegalForm: "SA", Active: true},
}

// Lookup resolves a SIREN. The input is validated first; invalid SIRENs
// are not found.
func (r *StaticBusinessRegistry) Lookup(_ context.Context, siren string) (RegistryEntry, error) {
	sr := identifier.ValidateSiren(siren)
	if !sr.Valid {
		return RegistryEntry{}, ErrNotFound
	}
	e, ok := r.entries[sr.Siren]
	if !ok {
		return RegistryEntry{}, ErrNotFound
	}
	return e, nil
}
