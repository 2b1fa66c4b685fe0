package model

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Category classifies an account by the leading digit of its code.
type Category string

const (
	CategoryAsset     Category = "asset"
	CategoryLiability Category = "liability"
	CategoryEquity    Category = "equity"
	CategoryRevenue   Category = "revenue"
	CategoryExpense   Category = "expense"
)

// BalanceSheet reports whether the category is a stock measure (a
// position at a point in time) rather than a flow over the period.
func (c Category) BalanceSheet() bool {
	switch c {
	case CategoryAsset, CategoryLiability, CategoryEquity:
		return true
	}
	return false
}

// AccountRecord is one row of a trial-balance export. Records are
// immutable after parsing; the engine only reads them. Codes are not
// required to be unique within an upload.
type AccountRecord struct {
	Code           string
	Name           string
	Debit          decimal.Decimal // current-period debit activity, non-negative
	Credit         decimal.Decimal // current-period credit activity, non-negative
	OpeningBalance decimal.Decimal // comparative-period raw figure
	ClosingBalance decimal.Decimal // current-period raw figure
}

// CodeNumber returns the numeric value of the account code.
func (a AccountRecord) CodeNumber() (int, error) {
	n, err := strconv.Atoi(a.Code)
	if err != nil {
		return 0, InvalidCodeError{Code: a.Code, Reason: "not numeric"}
	}
	return n, nil
}

// InvalidCodeError reports an account code that cannot be categorized.
type InvalidCodeError struct {
	Code   string
	Reason string
}

func (e InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid account code %q: %s", e.Code, e.Reason)
}

// Categorize derives the account category from the leading digit of
// code: 1 asset, 2 liability, 3 equity, 4 revenue, 5 expense. Any
// other shape of code fails with InvalidCodeError.
func Categorize(code string) (Category, error) {
	if code == "" {
		return "", InvalidCodeError{Code: code, Reason: "empty code"}
	}
	if _, err := strconv.Atoi(code); err != nil {
		return "", InvalidCodeError{Code: code, Reason: "not numeric"}
	}
	switch code[0] {
	case '1':
		return CategoryAsset, nil
	case '2':
		return CategoryLiability, nil
	case '3':
		return CategoryEquity, nil
	case '4':
		return CategoryRevenue, nil
	case '5':
		return CategoryExpense, nil
	}
	return "", InvalidCodeError{Code: code, Reason: "leading digit outside 1-5"}
}
