package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/runlog"
	"github.com/folio-dev/folio/internal/statement"
	"github.com/folio-dev/folio/internal/trialbalance"
)

func newClassifyCommand() *cobra.Command {
	var format string
	var projectDir string

	cmd := &cobra.Command{
		Use:   "classify <trial-balance.csv>",
		Short: "Classify a trial balance into statement lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(projectDir, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "trial balance format (default from folio.yaml)")
	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")

	return cmd
}

func runClassify(projectDir, file, format string) error {
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

	res := statement.Classify(records, proj.set)
	rep := statement.ValidateCoverage(records, proj.set)

	printSections(proj.cfg.Organization.Name, res)
	printRunSummary(res, rep)

	entry := runlog.Entry{
		Timestamp:    time.Now().UTC(),
		RunID:        uuid.NewString(),
		Organization: proj.cfg.Organization.Name,
		Source:       filepath.Base(file),
		Accounts:     len(records),
		Mapped:       rep.MappedCount,
		Warnings:     len(res.Warnings),
		Coverage:     rep.CoveragePercentage,
	}
	if err := runlog.Append(proj.root, entry); err != nil {
		return fmt.Errorf("appending run log: %w", err)
	}
	return nil
}

func printSections(org string, res statement.Result) {
	if res.Comparative {
		fmt.Printf("Statement lines for %s (current / comparative):\n", org)
	} else {
		fmt.Printf("Statement lines for %s (current period):\n", org)
	}

	for _, sec := range res.Sections {
		title := sec.Title
		if title == "" {
			title = sec.LineID
		}
		if res.Comparative {
			fmt.Printf("  %-24s %-36s %16s %16s\n", sec.LineID, title, sec.CurrentTotal, sec.ComparativeTotal)
		} else {
			fmt.Printf("  %-24s %-36s %16s\n", sec.LineID, title, sec.CurrentTotal)
		}
	}
}

func printRunSummary(res statement.Result, rep statement.Report) {
	fmt.Printf("\n%d accounts, %d mapped, coverage %.1f%%\n", rep.TotalAccounts, rep.MappedCount, rep.CoveragePercentage)

	for _, w := range res.Warnings {
		fmt.Printf("warning: skipped %q (%s): %v\n", w.Record.Code, w.Record.Name, w.Err)
	}
	if n := len(rep.UnmappedAccounts); n > 0 {
		fmt.Printf("warning: %d unmapped accounts, run 'folio coverage' for details\n", n)
	}
	if n := len(rep.AmbiguousAccounts); n > 0 {
		fmt.Printf("warning: %d accounts matched by more than one line, run 'folio coverage' for details\n", n)
	}
}
