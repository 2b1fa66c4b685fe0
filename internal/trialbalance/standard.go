package trialbalance

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

// StandardParser parses the six-column export:
// code,name,opening_balance,debit,credit,closing_balance.
type StandardParser struct{}

const (
	stdNumFields  = 6
	stdColCode    = 0
	stdColName    = 1
	stdColOpening = 2
	stdColDebit   = 3
	stdColCredit  = 4
	stdColClosing = 5
)

// Format returns the parser name.
func (p *StandardParser) Format() string { return "standard" }

// Parse reads a standard trial-balance CSV. The first row is a header.
func (p *StandardParser) Parse(r io.Reader) ([]model.AccountRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = stdNumFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading trial balance CSV: %w", err)
	}

	if len(rows) <= 1 {
		return nil, nil
	}

	var records []model.AccountRecord
	for i, row := range rows[1:] {
		rec, err := parseStandardRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseStandardRow(row []string) (model.AccountRecord, error) {
	opening, err := parseAmount(row[stdColOpening])
	if err != nil {
		return model.AccountRecord{}, fmt.Errorf("opening balance: %w", err)
	}
	debit, err := parseAmount(row[stdColDebit])
	if err != nil {
		return model.AccountRecord{}, fmt.Errorf("debit: %w", err)
	}
	credit, err := parseAmount(row[stdColCredit])
	if err != nil {
		return model.AccountRecord{}, fmt.Errorf("credit: %w", err)
	}
	closing, err := parseAmount(row[stdColClosing])
	if err != nil {
		return model.AccountRecord{}, fmt.Errorf("closing balance: %w", err)
	}

	return model.AccountRecord{
		Code:           row[stdColCode],
		Name:           row[stdColName],
		OpeningBalance: opening,
		Debit:          debit,
		Credit:         credit,
		ClosingBalance: closing,
	}, nil
}

// parseAmount parses a decimal cell, treating an empty cell as zero.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}
