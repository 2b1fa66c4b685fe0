package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/folio-dev/folio/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCurrentBalance_BalanceSheet(t *testing.T) {
	rec := model.AccountRecord{
		Code:           "1510",
		OpeningBalance: dec("100"),
		ClosingBalance: dec("50"),
	}
	got := CurrentBalance(rec, model.CategoryAsset)
	assert.True(t, got.Equal(dec("150")), "got %s", got)
}

func TestCurrentBalance_BalanceSheetActivityFallback(t *testing.T) {
	// Exports without balance columns carry the position in whichever
	// activity column; the other side is zero.
	rec := model.AccountRecord{Code: "1000", Credit: dec("25000")}
	got := CurrentBalance(rec, model.CategoryAsset)
	assert.True(t, got.Equal(dec("25000")), "got %s", got)

	rec = model.AccountRecord{Code: "2010", Debit: dec("89500")}
	got = CurrentBalance(rec, model.CategoryLiability)
	assert.True(t, got.Equal(dec("89500")), "got %s", got)
}

func TestCurrentBalance_Revenue(t *testing.T) {
	rec := model.AccountRecord{Code: "4010", Credit: dec("500")}
	got := CurrentBalance(rec, model.CategoryRevenue)
	assert.True(t, got.Equal(dec("500")), "got %s", got)
}

func TestCurrentBalance_Expense(t *testing.T) {
	rec := model.AccountRecord{Code: "5020", Debit: dec("300")}
	got := CurrentBalance(rec, model.CategoryExpense)
	assert.True(t, got.Equal(dec("300")), "got %s", got)
}

func TestCurrentBalance_IncomeIgnoresBalances(t *testing.T) {
	rec := model.AccountRecord{
		Code:           "4010",
		Debit:          dec("20"),
		Credit:         dec("520"),
		OpeningBalance: dec("999"),
		ClosingBalance: dec("999"),
	}
	got := CurrentBalance(rec, model.CategoryRevenue)
	assert.True(t, got.Equal(dec("500")), "got %s", got)
}

func TestComparativeBalance(t *testing.T) {
	rec := model.AccountRecord{
		Code:           "1510",
		OpeningBalance: dec("100"),
		ClosingBalance: dec("50"),
	}
	got := ComparativeBalance(rec, model.CategoryAsset)
	assert.True(t, got.Equal(dec("100")), "got %s", got)

	// Income-statement comparative falls back to the opening column.
	rec = model.AccountRecord{Code: "4010", Credit: dec("500"), OpeningBalance: dec("410.50")}
	got = ComparativeBalance(rec, model.CategoryRevenue)
	assert.True(t, got.Equal(dec("410.50")), "got %s", got)
}

func TestComparative_Detection(t *testing.T) {
	single := []model.AccountRecord{
		{Code: "1000", Debit: dec("10")},
		{Code: "4010", Credit: dec("20")},
	}
	assert.False(t, Comparative(single))

	two := append(single, model.AccountRecord{Code: "1510", OpeningBalance: dec("0.01")})
	assert.True(t, Comparative(two))
}
