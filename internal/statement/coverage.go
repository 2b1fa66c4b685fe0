package statement

import (
	"github.com/folio-dev/folio/internal/model"
	"github.com/folio-dev/folio/internal/rules"
)

// Ambiguity names an account matched by two or more statement lines,
// with the colliding line IDs in display order. This is a rule
// configuration defect to show an operator, never something the
// classifier resolves by picking a winner.
type Ambiguity struct {
	Account model.AccountRecord
	LineIDs []string
}

// Report is the coverage cross-check of an account set against a rule
// set. Read-only advisory output; nothing in it mutates rules or
// records.
type Report struct {
	TotalAccounts      int // categorizable accounts considered
	MappedCount        int
	UnmappedAccounts   []model.AccountRecord
	AmbiguousAccounts  []Ambiguity
	InvalidAccounts    []Warning
	CoveragePercentage float64
}

// ValidateCoverage checks every record against every line and reports
// which accounts are unmapped, which collide across lines, and the
// share of accounts mapped. The percentage counts accounts, not
// balance magnitude. Records with invalid codes are reported
// separately and excluded from the percentage.
func ValidateCoverage(records []model.AccountRecord, set *rules.Set) Report {
	valid, invalid := partition(records)

	rep := Report{
		TotalAccounts:   len(valid),
		InvalidAccounts: invalid,
	}

	for _, c := range valid {
		ids := set.Matching(c.code)
		switch {
		case len(ids) == 0:
			rep.UnmappedAccounts = append(rep.UnmappedAccounts, c.rec)
		case len(ids) > 1:
			rep.MappedCount++
			rep.AmbiguousAccounts = append(rep.AmbiguousAccounts, Ambiguity{
				Account: c.rec,
				LineIDs: ids,
			})
		default:
			rep.MappedCount++
		}
	}

	if rep.TotalAccounts == 0 {
		rep.CoveragePercentage = 100
		return rep
	}
	rep.CoveragePercentage = float64(rep.TotalAccounts-len(rep.UnmappedAccounts)) / float64(rep.TotalAccounts) * 100
	return rep
}
