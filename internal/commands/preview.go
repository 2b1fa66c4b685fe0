package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/model"
	"github.com/folio-dev/folio/internal/statement"
	"github.com/folio-dev/folio/internal/trialbalance"
)

func newPreviewCommand() *cobra.Command {
	var format string
	var projectDir string

	cmd := &cobra.Command{
		Use:   "preview <line-id> <trial-balance.csv>",
		Short: "Show which accounts a statement line's rule captures",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(projectDir, args[0], args[1], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "trial balance format (default from folio.yaml)")
	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")

	return cmd
}

func runPreview(projectDir, lineID, file, format string) error {
	proj, err := loadProject(projectDir)
	if err != nil {
		return err
	}
	if format == "" {
		format = proj.cfg.Statement.DefaultFormat
	}

	rule, ok := proj.set.Get(lineID)
	if !ok {
		return fmt.Errorf("unknown statement line %q", lineID)
	}

	records, err := trialbalance.ParseFile(trialbalance.DefaultRegistry(), file, format)
	if err != nil {
		return err
	}

	captured := 0
	for _, rec := range records {
		code, err := rec.CodeNumber()
		if err != nil {
			continue
		}
		if !rule.Matches(code) {
			continue
		}
		captured++

		balance := "?"
		if cat, err := model.Categorize(rec.Code); err == nil {
			balance = statement.CurrentBalance(rec, cat).String()
		}
		fmt.Printf("  %-8s %-36s %16s\n", rec.Code, rec.Name, balance)
	}

	fmt.Printf("%d of %d accounts would roll up into %q\n", captured, len(records), lineID)
	return nil
}
