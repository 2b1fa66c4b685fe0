package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/gitops"
	"github.com/folio-dev/folio/internal/model"
	"github.com/folio-dev/folio/internal/rules"
)

func newRulesCommand() *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and edit the mapping rules",
	}
	rulesCmd.AddCommand(newRulesListCommand())
	rulesCmd.AddCommand(newRulesAddRangeCommand())
	rulesCmd.AddCommand(newRulesIncludeCommand())
	rulesCmd.AddCommand(newRulesExcludeCommand())
	return rulesCmd
}

func newRulesListCommand() *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List statement lines and their rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := loadProject(projectDir)
			if err != nil {
				return err
			}
			for _, l := range proj.set.Lines() {
				fmt.Printf("%-24s %s\n", l.LineID, describeRule(l))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	return cmd
}

func describeRule(l model.MappingRule) string {
	var parts []string
	for _, r := range l.Ranges {
		parts = append(parts, fmt.Sprintf("%d-%d", r.From, r.To))
	}
	if len(l.Includes) > 0 {
		parts = append(parts, fmt.Sprintf("+%v", l.Includes))
	}
	if len(l.Excludes) > 0 {
		parts = append(parts, fmt.Sprintf("-%v", l.Excludes))
	}
	return strings.Join(parts, " ")
}

func newRulesAddRangeCommand() *cobra.Command {
	var projectDir string
	var title string

	cmd := &cobra.Command{
		Use:   "add-range <line-id> <from> <to>",
		Short: "Add a code range to a line, creating the line if needed",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid from %q: %w", args[1], err)
			}
			to, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid to %q: %w", args[2], err)
			}

			msg := fmt.Sprintf("rules: add range %d-%d to %s", from, to, args[0])
			return editRules(projectDir, msg, func(lines []model.MappingRule) ([]model.MappingRule, error) {
				for i := range lines {
					if lines[i].LineID == args[0] {
						lines[i].Ranges = append(lines[i].Ranges, model.CodeRange{From: from, To: to})
						return lines, nil
					}
				}
				return append(lines, model.MappingRule{
					LineID: args[0],
					Title:  title,
					Ranges: []model.CodeRange{{From: from, To: to}},
				}), nil
			})
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	cmd.Flags().StringVar(&title, "title", "", "display title when creating a new line")
	return cmd
}

func newRulesIncludeCommand() *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   "include <line-id> <code>",
		Short: "Always map a code to a line, even outside its ranges",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRulesCodeEdit(projectDir, args[0], args[1], "include")
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	return cmd
}

func newRulesExcludeCommand() *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   "exclude <line-id> <code>",
		Short: "Never map a code to a line, even inside its ranges",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRulesCodeEdit(projectDir, args[0], args[1], "exclude")
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", ".", "project directory")
	return cmd
}

func runRulesCodeEdit(projectDir, lineID, codeArg, op string) error {
	code, err := strconv.Atoi(codeArg)
	if err != nil {
		return fmt.Errorf("invalid code %q: %w", codeArg, err)
	}

	msg := fmt.Sprintf("rules: %s %d on %s", op, code, lineID)
	return editRules(projectDir, msg, func(lines []model.MappingRule) ([]model.MappingRule, error) {
		for i := range lines {
			if lines[i].LineID != lineID {
				continue
			}
			if op == "include" {
				lines[i].Includes = append(lines[i].Includes, code)
			} else {
				lines[i].Excludes = append(lines[i].Excludes, code)
			}
			return lines, nil
		}
		return nil, fmt.Errorf("unknown statement line %q", lineID)
	})
}

// editRules loads the rule file, applies edit, saves (which validates),
// and commits the change when auto-commit is on. The engine never sees
// the file mid-edit: it always loads a complete snapshot.
func editRules(projectDir, message string, edit func([]model.MappingRule) ([]model.MappingRule, error)) error {
	proj, err := loadProject(projectDir)
	if err != nil {
		return err
	}

	lines := append([]model.MappingRule(nil), proj.set.Lines()...)
	lines, err = edit(lines)
	if err != nil {
		return err
	}

	if err := rules.Save(proj.rulesPath(), lines); err != nil {
		return err
	}

	if proj.cfg.Git.AutoCommit && gitops.IsRepo(proj.root) {
		hash, err := gitops.CommitPaths(proj.root, message, proj.cfg.Git.AuthorName, proj.cfg.Git.AuthorEmail, proj.cfg.Statement.RulesFile)
		if err != nil {
			return fmt.Errorf("committing rule edit: %w", err)
		}
		fmt.Printf("%s (%s)\n", message, hash)
		return nil
	}

	fmt.Println(message)
	return nil
}
