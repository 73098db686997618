package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daniss/frenchInvoice/internal/identifier"
)

var validateCmd = &cobra.Command{
	Use:   "validate <kind> <value>",
	Short: "Validate a French identifier",
	Long: `Validate a single French identifier and print the result.

Kinds:
  siren    9-digit company number (Luhn checksum)
  siret    14-digit establishment number (Luhn checksum)
  vat      intra-community VAT number (FR + key + SIREN)
  iban     French IBAN (mod-97 checksum)
  postal   5-digit postal code
  phone    French phone number

Examples:
  frenchinvoice validate siren 732829320
  frenchinvoice validate vat FR44732829320
  frenchinvoice validate siret "732 829 320 00074"`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type identifierOutcome struct {
	valid bool
	err   string
	body  interface{}
}

func validateOne(kind, value string) (identifierOutcome, error) {
	switch kind {
	case "siren":
		r := identifier.ValidateSiren(value)
		return identifierOutcome{r.Valid, r.Err, r}, nil
	case "siret":
		r := identifier.ValidateSiret(value)
		return identifierOutcome{r.Valid, r.Err, r}, nil
	case "vat":
		r := identifier.ValidateVat(value)
		return identifierOutcome{r.Valid, r.Err, r}, nil
	case "iban":
		r := identifier.ValidateIban(value)
		return identifierOutcome{r.Valid, r.Err, r}, nil
	case "postal":
		r := identifier.ValidatePostalCode(value)
		return identifierOutcome{r.Valid, r.Err, r}, nil
	case "phone":
		r := identifier.ValidatePhone(value)
		return identifierOutcome{r.Valid, r.Err, r}, nil
	default:
		return identifierOutcome{}, fmt.Errorf("unknown identifier kind %q", kind)
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind, value := args[0], args[1]

	outcome, err := validateOne(kind, value)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(outcome.body); err != nil {
			return err
		}
	} else if outcome.valid {
		fmt.Printf("✓ %s %s: VALID\n", kind, value)
	} else {
		fmt.Printf("✗ %s %s: INVALID\n", kind, value)
		if outcome.err != "" {
			fmt.Printf("  - %s\n", outcome.err)
		}
	}

	if !outcome.valid {
		return fmt.Errorf("validation failed")
	}
	return nil
}
