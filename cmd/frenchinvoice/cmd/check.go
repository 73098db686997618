package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daniss/frenchInvoice/internal/validation"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.json>",
	Short: "Run the cross-field checks on a business data file",
	Long: `Check a JSON file of business data for consistency.

Beyond per-field validation this verifies that the SIRET and the VAT
number embed the declared SIREN. Messages are in French; the codes are
stable and language-independent.

Example file:
  {
    "siren": "732829320",
    "siret": "73282932000074",
    "vat_number": "FR44732829320",
    "postal_code": "75001"
  }

Examples:
  frenchinvoice check business.json
  frenchinvoice check business.json -f json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var data validation.BusinessData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	result := validation.ValidateBusinessData(data)

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		if result.Valid {
			fmt.Printf("✓ %s: VALID\n", args[0])
		} else {
			fmt.Printf("✗ %s: INVALID\n", args[0])
			for _, e := range result.Errors {
				fmt.Printf("  - [%s] %s: %s\n", e.Code, e.Field, e.Message)
			}
		}
		for _, w := range result.Warnings {
			fmt.Printf("  ⚠ [%s] %s: %s\n", w.Code, w.Field, w.Message)
		}
	}

	if !result.Valid {
		return fmt.Errorf("validation failed")
	}
	return nil
}
