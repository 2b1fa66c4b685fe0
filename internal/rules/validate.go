package rules

import (
	"fmt"

	"github.com/folio-dev/folio/internal/model"
)

// ValidationError describes a single defect in a rule definition.
type ValidationError struct {
	LineID      string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("rule %q: %s", e.LineID, e.Description)
}

// Validate checks rule definitions the way the rule store must before
// saving. The classification engine itself never rejects a rule (a
// defective rule just matches nothing), so this is the only place a
// bad definition gets stopped.
func Validate(lines []model.MappingRule) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if l.LineID == "" {
			errs = append(errs, ValidationError{
				LineID:      l.LineID,
				Description: "missing line id",
			})
		}
		if seen[l.LineID] {
			errs = append(errs, ValidationError{
				LineID:      l.LineID,
				Description: "duplicate line id",
			})
		}
		seen[l.LineID] = true

		for _, r := range l.Ranges {
			if r.From > r.To {
				errs = append(errs, ValidationError{
					LineID:      l.LineID,
					Description: fmt.Sprintf("range %d-%d is reversed", r.From, r.To),
				})
			}
		}

		if len(l.Ranges) == 0 && len(l.Includes) == 0 {
			errs = append(errs, ValidationError{
				LineID:      l.LineID,
				Description: "rule has no ranges and no includes, it can never match",
			})
		}
	}

	return errs
}
