package statement

import (
	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

// CurrentBalance computes the reportable current-period balance of a
// record under the given category's sign convention.
//
// Balance-sheet accounts are stock measures: exports carry the prior
// position in the opening column and the period's net movement in the
// closing column, so the period-end position is their sum. Exports
// that omit both balance columns put the position magnitude in the
// debit or credit column (the other side is zero), so the sum of the
// two activity columns is the position.
//
// Income-statement accounts are flow measures and always use the
// period's debit/credit activity: revenue is credit minus debit,
// expense is debit minus credit.
func CurrentBalance(rec model.AccountRecord, cat model.Category) decimal.Decimal {
	switch cat {
	case model.CategoryRevenue:
		return rec.Credit.Sub(rec.Debit)
	case model.CategoryExpense:
		return rec.Debit.Sub(rec.Credit)
	}
	if rec.OpeningBalance.IsZero() && rec.ClosingBalance.IsZero() {
		return rec.Debit.Add(rec.Credit)
	}
	return rec.OpeningBalance.Add(rec.ClosingBalance)
}

// ComparativeBalance computes the reportable prior-period balance.
// For balance-sheet accounts that is the opening position. Exports
// sometimes reuse the opening column to carry prior-year P&L figures
// for income-statement accounts; when they don't, the column is zero
// and so is the comparative. Both conventions currently read the
// opening column; the category parameter is part of the contract.
func ComparativeBalance(rec model.AccountRecord, cat model.Category) decimal.Decimal {
	return rec.OpeningBalance
}

// Comparative reports whether a batch of records carries a prior
// period. Any non-zero opening balance marks the whole batch as
// two-period; otherwise comparative computation is skipped entirely.
func Comparative(records []model.AccountRecord) bool {
	for _, r := range records {
		if !r.OpeningBalance.IsZero() {
			return true
		}
	}
	return false
}
