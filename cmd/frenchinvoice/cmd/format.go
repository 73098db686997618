package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniss/frenchInvoice/internal/identifier"
)

var formatCmd = &cobra.Command{
	Use:   "format <kind> <value>",
	Short: "Format an identifier for display",
	Long: `Format a French identifier into its conventional display form.

Inputs that do not have the expected length are printed unchanged.

Examples:
  frenchinvoice format siren 732829320        -> 732 829 320
  frenchinvoice format siret 73282932000074   -> 732 829 320 00074
  frenchinvoice format vat FR44732829320      -> FR 44 732 829 320
  frenchinvoice format phone 0123456789       -> 01 23 45 67 89`,
	Args: cobra.ExactArgs(2),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	kind, value := args[0], args[1]

	var formatted string
	switch kind {
	case "siren":
		formatted = identifier.FormatSiren(value)
	case "siret":
		formatted = identifier.FormatSiret(value)
	case "vat":
		formatted = identifier.FormatVat(value)
	case "iban":
		formatted = identifier.FormatIban(value)
	case "postal":
		formatted = identifier.FormatPostalCode(value)
	case "phone":
		formatted = identifier.FormatPhone(value)
	default:
		return fmt.Errorf("unknown identifier kind %q", kind)
	}

	fmt.Println(formatted)
	return nil
}
