package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/model"
	"github.com/folio-dev/folio/internal/statement"
	"github.com/folio-dev/folio/internal/trialbalance"
)

func newCoverageCommand() *cobra.Command {
	var format string
	var projectDir string

	cmd := &cobra.Command{
		Use:   "coverage <trial-balance.csv>",
		Short: "Report unmapped and ambiguous accounts for a trial balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoverage(projectDir, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "trial balance format (default from folio.yaml)")
	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")

	return cmd
}

func runCoverage(projectDir, file, format string) error {
	proj, err := loadProject(projectDir)
	if err != nil {
		return err
	}
	if format == "" {
		format = proj.cfg.Statement.DefaultFormat
	}

	records, err := trialbalance.ParseFile(trialbalance.DefaultRegistry(), file, format)
	if err != nil {
		return err
	}

	rep := statement.ValidateCoverage(records, proj.set)

	fmt.Printf("Coverage: %.1f%% (%d of %d accounts mapped)\n", rep.CoveragePercentage, rep.MappedCount, rep.TotalAccounts)

	if len(rep.UnmappedAccounts) > 0 {
		fmt.Printf("\nUnmapped accounts (%d):\n", len(rep.UnmappedAccounts))
		for _, a := range rep.UnmappedAccounts {
			fmt.Printf("  %-8s %-36s %16s\n", a.Code, a.Name, unmappedBalance(a))
		}
	}

	if len(rep.AmbiguousAccounts) > 0 {
		fmt.Printf("\nAmbiguous accounts (%d):\n", len(rep.AmbiguousAccounts))
		for _, amb := range rep.AmbiguousAccounts {
			fmt.Printf("  %-8s %-36s matched by %s\n", amb.Account.Code, amb.Account.Name, strings.Join(amb.LineIDs, ", "))
		}
	}

	if len(rep.InvalidAccounts) > 0 {
		fmt.Printf("\nInvalid account codes (%d):\n", len(rep.InvalidAccounts))
		for _, w := range rep.InvalidAccounts {
			fmt.Printf("  %-8s %-36s %v\n", w.Record.Code, w.Record.Name, w.Err)
		}
	}

	return nil
}

// unmappedBalance shows the reportable balance so an operator can see
// how much money an unmapped account carries.
func unmappedBalance(a model.AccountRecord) string {
	cat, err := model.Categorize(a.Code)
	if err != nil {
		return "?"
	}
	return statement.CurrentBalance(a, cat).String()
}
