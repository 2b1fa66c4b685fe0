package statement

import (
	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
	"github.com/folio-dev/folio/internal/rules"
)

// Section is one statement line: the rule's matched accounts and their
// summed balances. Lines with no matched accounts still appear with
// zero totals.
type Section struct {
	LineID           string
	Title            string
	Accounts         []model.AccountRecord
	CurrentTotal     decimal.Decimal
	ComparativeTotal decimal.Decimal
}

// Warning flags a record skipped during a run, with the reason.
type Warning struct {
	Record model.AccountRecord
	Err    error
}

// Result is the outcome of one classification run. Sections are in the
// rule set's display order. ComparativeTotal fields are only populated
// when Comparative is true; single-period batches skip the comparative
// computation rather than reporting zeros.
type Result struct {
	Sections    []Section
	Comparative bool
	Warnings    []Warning
}

// classified pairs a record with its parsed code and category so each
// record is categorized once, not once per line.
type classified struct {
	rec  model.AccountRecord
	code int
	cat  model.Category
}

// Classify runs every record against every line of the rule set and
// sums reportable balances per line. Records with invalid codes are
// skipped and surfaced as warnings; a bad row never aborts the run.
func Classify(records []model.AccountRecord, set *rules.Set) Result {
	valid, warnings := partition(records)
	res := Result{
		Comparative: Comparative(records),
		Warnings:    warnings,
	}

	for _, rule := range set.Lines() {
		sec := Section{
			LineID:           rule.LineID,
			Title:            rule.Title,
			CurrentTotal:     decimal.Zero,
			ComparativeTotal: decimal.Zero,
		}
		for _, c := range valid {
			if !rule.Matches(c.code) {
				continue
			}
			sec.Accounts = append(sec.Accounts, c.rec)
			sec.CurrentTotal = sec.CurrentTotal.Add(CurrentBalance(c.rec, c.cat))
			if res.Comparative {
				sec.ComparativeTotal = sec.ComparativeTotal.Add(ComparativeBalance(c.rec, c.cat))
			}
		}
		res.Sections = append(res.Sections, sec)
	}
	return res
}

// partition splits records into categorizable ones and warnings.
func partition(records []model.AccountRecord) ([]classified, []Warning) {
	valid := make([]classified, 0, len(records))
	var warnings []Warning
	for _, rec := range records {
		cat, err := model.Categorize(rec.Code)
		if err != nil {
			warnings = append(warnings, Warning{Record: rec, Err: err})
			continue
		}
		code, err := rec.CodeNumber()
		if err != nil {
			warnings = append(warnings, Warning{Record: rec, Err: err})
			continue
		}
		valid = append(valid, classified{rec: rec, code: code, cat: cat})
	}
	return valid, warnings
}
