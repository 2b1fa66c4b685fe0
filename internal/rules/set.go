package rules

import (
	"github.com/folio-dev/folio/internal/model"
)

// Set is an immutable snapshot of an organization's mapping rules, in
// statement display order. Order is presentation-significant: sections
// are emitted in this order.
type Set struct {
	lines  []model.MappingRule
	byLine map[string]model.MappingRule
}

// NewSet creates a Set from rules in display order.
func NewSet(lines []model.MappingRule) *Set {
	byLine := make(map[string]model.MappingRule, len(lines))
	for _, l := range lines {
		byLine[l.LineID] = l
	}
	return &Set{lines: lines, byLine: byLine}
}

// Lines returns all rules in display order.
func (s *Set) Lines() []model.MappingRule {
	return s.lines
}

// Get returns the rule for a statement line.
func (s *Set) Get(lineID string) (model.MappingRule, bool) {
	l, ok := s.byLine[lineID]
	return l, ok
}

// Matching returns the IDs of every line whose rule matches code, in
// display order. More than one ID means the rule set is ambiguous for
// that code; zero means the code is unmapped.
func (s *Set) Matching(code int) []string {
	var ids []string
	for _, l := range s.lines {
		if l.Matches(code) {
			ids = append(ids, l.LineID)
		}
	}
	return ids
}

// Len returns the number of statement lines.
func (s *Set) Len() int {
	return len(s.lines)
}
