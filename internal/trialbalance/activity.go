package trialbalance

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/folio-dev/folio/internal/model"
)

// ActivityParser parses the four-column export without balance
// columns: code,name,debit,credit. Such exports are always
// single-period; opening and closing balances stay zero.
type ActivityParser struct{}

const (
	actNumFields = 4
	actColCode   = 0
	actColName   = 1
	actColDebit  = 2
	actColCredit = 3
)

// Format returns the parser name.
func (p *ActivityParser) Format() string { return "activity" }

// Parse reads an activity-only trial-balance CSV. The first row is a
// header.
func (p *ActivityParser) Parse(r io.Reader) ([]model.AccountRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = actNumFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading trial balance CSV: %w", err)
	}

	if len(rows) <= 1 {
		return nil, nil
	}

	var records []model.AccountRecord
	for i, row := range rows[1:] {
		debit, err := parseAmount(row[actColDebit])
		if err != nil {
			return nil, fmt.Errorf("row %d: debit: %w", i+2, err)
		}
		credit, err := parseAmount(row[actColCredit])
		if err != nil {
			return nil, fmt.Errorf("row %d: credit: %w", i+2, err)
		}
		records = append(records, model.AccountRecord{
			Code:   row[actColCode],
			Name:   row[actColName],
			Debit:  debit,
			Credit: credit,
		})
	}
	return records, nil
}
