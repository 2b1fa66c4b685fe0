package commands

import (
	"fmt"
	"path/filepath"

	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/rules"
)

// project bundles a loaded folio.yaml and its rule-set snapshot.
type project struct {
	root string
	cfg  *config.Config
	set  *rules.Set
}

// loadProject reads folio.yaml and the rule file it points at.
func loadProject(dir string) (*project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, "folio.yaml"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	set, err := rules.Load(filepath.Join(root, cfg.Statement.RulesFile))
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	return &project{root: root, cfg: cfg, set: set}, nil
}

// rulesPath returns the absolute rule file path.
func (pr *project) rulesPath() string {
	return filepath.Join(pr.root, pr.cfg.Statement.RulesFile)
}
