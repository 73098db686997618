package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/daniss/frenchInvoice/internal/compliance"
	"github.com/daniss/frenchInvoice/internal/config"
	"github.com/daniss/frenchInvoice/internal/model"
)

var (
	deadlineSiren        string
	deadlineEmployees    int
	deadlineRevenueCents int64
	deadlinePublicSector bool
)

var deadlineCmd = &cobra.Command{
	Use:   "deadline",
	Short: "Resolve the e-invoicing mandate deadline for a company",
	Long: `Resolve which e-invoicing obligation applies to a company and when.

The schedule can be overridden through the environment
(COMPLIANCE_SME_DEADLINE etc.), so a postponed mandate does not require
a new binary.

Examples:
  frenchinvoice deadline --siren 732829320
  frenchinvoice deadline --siren 732829320 --employees 300
  frenchinvoice deadline --siren 130025265 --public-sector`,
	RunE: runDeadline,
}

func init() {
	rootCmd.AddCommand(deadlineCmd)

	deadlineCmd.Flags().StringVar(&deadlineSiren, "siren", "", "Company SIREN")
	deadlineCmd.Flags().IntVar(&deadlineEmployees, "employees", 0, "Employee count")
	deadlineCmd.Flags().Int64Var(&deadlineRevenueCents, "revenue-cents", 0, "Annual revenue in cents")
	deadlineCmd.Flags().BoolVar(&deadlinePublicSector, "public-sector", false, "Company is a public-sector entity")
}

func runDeadline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	company := model.NewCompany("")
	company.SetSiren(deadlineSiren)
	company.EmployeeCount = deadlineEmployees
	company.AnnualRevenueCents = deadlineRevenueCents
	company.IsPublicSector = deadlinePublicSector

	resolver := compliance.NewResolver(cfg.Compliance.Rules())
	obligation := resolver.Resolve(company, time.Now().UTC())

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(obligation)
	}

	fmt.Printf("Segment: %s\n", obligation.Segment)
	if obligation.Deadline == nil {
		fmt.Println("No deadline: company is outside the mandate")
		return nil
	}
	fmt.Printf("Deadline: %s\n", obligation.Deadline.Format("2006-01-02"))
	if obligation.AlreadyDue {
		fmt.Println("Status: already due")
	} else {
		fmt.Println("Status: upcoming")
	}
	return nil
}
