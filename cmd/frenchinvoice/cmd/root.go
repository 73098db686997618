package cmd

import (
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "frenchinvoice",
	Short: "Validate French business identifiers and e-invoices",
	Long: `frenchinvoice is a CLI tool for French e-invoicing compliance.

Supports:
  - Identifier validation: SIREN, SIRET, VAT, IBAN, postal codes, phone
  - Display formatting for all identifiers
  - Cross-field business data checks
  - EN 16931 invoice validation
  - E-invoicing mandate deadline lookup

Examples:
  # Validate a SIREN
  frenchinvoice validate siren 732829320

  # Format a SIRET for display
  frenchinvoice format siret 73282932000074

  # Check a business data file
  frenchinvoice check business.json

  # Validate an invoice document
  frenchinvoice invoice validate invoice.json`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (json, table)")
}
