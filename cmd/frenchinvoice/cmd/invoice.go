package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/daniss/frenchInvoice/internal/config"
	"github.com/daniss/frenchInvoice/internal/model"
	"github.com/daniss/frenchInvoice/internal/money"
)

var (
	recomputeTotals bool
	newSupplierName string
	newBuyerName    string
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Work with EN 16931 invoice documents",
}

var invoiceValidateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Validate an invoice document",
	Long: `Validate a JSON invoice document against the EN 16931 core rules:
mandatory fields, line arithmetic, document totals and VAT breakdown.

With --recompute the amounts are derived from quantities and unit prices
before validation instead of being taken as submitted.

Examples:
  frenchinvoice invoice validate invoice.json
  frenchinvoice invoice validate invoice.json --recompute`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoiceValidate,
}

var invoiceTotalsCmd = &cobra.Command{
	Use:   "totals <file.json>",
	Short: "Compute and print invoice totals",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceTotals,
}

var invoiceNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a numbered draft invoice",
	Long: `Create a draft invoice with the next sequential number and print it
as JSON, ready to be filled in and validated.

The number prefix, currency and default VAT rate come from the
environment (INVOICE_NUMBER_PREFIX, INVOICE_DEFAULT_CURRENCY,
INVOICE_DEFAULT_VAT_RATE).

Examples:
  frenchinvoice invoice new --supplier "Exemple SARL" --buyer "Client SA"
  frenchinvoice invoice new > draft.json`,
	RunE: runInvoiceNew,
}

func init() {
	rootCmd.AddCommand(invoiceCmd)
	invoiceCmd.AddCommand(invoiceValidateCmd)
	invoiceCmd.AddCommand(invoiceTotalsCmd)
	invoiceCmd.AddCommand(invoiceNewCmd)

	invoiceValidateCmd.Flags().BoolVar(&recomputeTotals, "recompute", false, "Recompute amounts before validating")
	invoiceNewCmd.Flags().StringVar(&newSupplierName, "supplier", "", "Supplier company name")
	invoiceNewCmd.Flags().StringVar(&newBuyerName, "buyer", "", "Buyer company name")
}

func loadInvoice(path string) (*model.Invoice, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var inv model.Invoice
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &inv, nil
}

func runInvoiceValidate(cmd *cobra.Command, args []string) error {
	inv, err := loadInvoice(args[0])
	if err != nil {
		return err
	}

	if recomputeTotals {
		inv.ComputeTotals()
	}

	result := inv.Validate()

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else if result.Valid {
		fmt.Printf("✓ %s: VALID\n", args[0])
	} else {
		fmt.Printf("✗ %s: INVALID\n", args[0])
		for _, e := range result.Errors {
			fmt.Printf("  - [%s] %s: %s\n", e.Code, e.Field, e.Message)
		}
	}

	if !result.Valid {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func runInvoiceNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	issuer, err := cfg.Invoicing.Issuer()
	if err != nil {
		return err
	}

	inv := issuer.New(time.Now().UTC())
	if newSupplierName != "" {
		inv.Supplier = model.NewCompany(newSupplierName)
	}
	if newBuyerName != "" {
		inv.Buyer = model.NewCompany(newBuyerName)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(inv)
}

func runInvoiceTotals(cmd *cobra.Command, args []string) error {
	inv, err := loadInvoice(args[0])
	if err != nil {
		return err
	}

	inv.ComputeTotals()

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(inv)
	}

	fmt.Printf("Invoice %s\n", inv.Number)
	for _, line := range inv.Lines {
		fmt.Printf("  %-40s %12s\n", line.Description, money.FormatEUR(line.TotalCents))
	}
	fmt.Printf("Net:   %s\n", money.FormatEUR(inv.NetCents))
	fmt.Printf("Tax:   %s\n", money.FormatEUR(inv.TaxCents))
	fmt.Printf("Total: %s\n", money.FormatEUR(inv.TotalCents))
	return nil
}
