package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/folio-dev/folio/internal/model"
)

// ruleFile is the on-disk shape of rules.yaml.
type ruleFile struct {
	Lines []model.MappingRule `yaml:"lines"`
}

// Load reads a rules.yaml file and returns an immutable Set.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	return NewSet(rf.Lines), nil
}

// Save validates and writes a rule set to a YAML file. Defective rule
// definitions are rejected here, at save time, so the engine only ever
// sees well-formed snapshots.
func Save(path string, lines []model.MappingRule) error {
	if verrs := Validate(lines); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("invalid rule definitions: %s", strings.Join(msgs, "; "))
	}

	data, err := yaml.Marshal(ruleFile{Lines: lines})
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}
