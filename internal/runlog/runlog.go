package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the classification run log.
type Entry struct {
	Timestamp    time.Time
	RunID        string
	Organization string
	Source       string // trial balance file the run consumed
	Accounts     int
	Mapped       int
	Warnings     int
	Coverage     float64 // percentage, 0-100
}

// Header is the CSV header for run-log.csv.
const Header = "timestamp,run_id,organization,source,accounts,mapped,warnings,coverage_pct"

const (
	numFields       = 8
	logDir          = "logs"
	logFile         = "logs/run-log.csv"
	colTimestamp    = 0
	colRunID        = 1
	colOrganization = 2
	colSource       = 3
	colAccounts     = 4
	colMapped       = 5
	colWarnings     = 6
	colCoverage     = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colOrganization] = e.Organization
	row[colSource] = e.Source
	row[colAccounts] = strconv.Itoa(e.Accounts)
	row[colMapped] = strconv.Itoa(e.Mapped)
	row[colWarnings] = strconv.Itoa(e.Warnings)
	row[colCoverage] = strconv.FormatFloat(e.Coverage, 'f', 2, 64)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	accounts, err := strconv.Atoi(record[colAccounts])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing accounts %q: %w", record[colAccounts], err)
	}
	mapped, err := strconv.Atoi(record[colMapped])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing mapped %q: %w", record[colMapped], err)
	}
	warnings, err := strconv.Atoi(record[colWarnings])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing warnings %q: %w", record[colWarnings], err)
	}
	coverage, err := strconv.ParseFloat(record[colCoverage], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing coverage %q: %w", record[colCoverage], err)
	}

	return Entry{
		Timestamp:    ts,
		RunID:        record[colRunID],
		Organization: record[colOrganization],
		Source:       record[colSource],
		Accounts:     accounts,
		Mapped:       mapped,
		Warnings:     warnings,
		Coverage:     coverage,
	}, nil
}

// Append writes an entry to <projectRoot>/logs/run-log.csv, creating
// the file and header if needed.
func Append(projectRoot string, e Entry) error {
	dir := filepath.Join(projectRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(projectRoot, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := cw.Write(MarshalEntry(e)); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}

	return cw.Error()
}

// Read returns all entries from <projectRoot>/logs/run-log.csv.
// Returns an empty slice if the file does not exist.
func Read(projectRoot string) ([]Entry, error) {
	path := filepath.Join(projectRoot, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
