package rules

import "github.com/folio-dev/folio/internal/model"

// DefaultLines returns the seed rule catalog for a new organization.
// This is configuration data, not engine logic: organizations re-map
// any of it to match their own chart of accounts.
//
// Liability codes follow the common convention of trade payables split
// around the loan and tax blocks. 2500 (dividends payable) sits inside
// the payables range and is carved out with an exclude so it can roll
// up into its own line via an include.
func DefaultLines() []model.MappingRule {
	return []model.MappingRule{
		{LineID: "cash", Title: "Cash and cash equivalents", Ranges: []model.CodeRange{{From: 1000, To: 1099}}},
		{LineID: "trade_receivables", Title: "Trade and other receivables", Ranges: []model.CodeRange{{From: 1140, To: 1215}}},
		{LineID: "inventory", Title: "Inventories", Ranges: []model.CodeRange{{From: 1300, To: 1399}}},
		{LineID: "prepayments", Title: "Prepayments", Ranges: []model.CodeRange{{From: 1400, To: 1449}}},
		{LineID: "fixed_assets", Title: "Property, plant and equipment", Ranges: []model.CodeRange{{From: 1500, To: 1799}}},
		{LineID: "investments", Title: "Long-term investments", Ranges: []model.CodeRange{{From: 1800, To: 1899}}},
		{LineID: "intangible_assets", Title: "Intangible assets", Ranges: []model.CodeRange{{From: 1900, To: 1999}}},

		{LineID: "trade_payables", Title: "Trade and other payables", Ranges: []model.CodeRange{{From: 2010, To: 2099}, {From: 2400, To: 2599}}, Excludes: []int{2500}},
		{LineID: "loans_short_term", Title: "Short-term borrowings", Ranges: []model.CodeRange{{From: 2100, To: 2199}}},
		{LineID: "taxes_payable", Title: "Taxes payable", Ranges: []model.CodeRange{{From: 2200, To: 2299}}},
		{LineID: "accrued_liabilities", Title: "Accrued liabilities", Ranges: []model.CodeRange{{From: 2300, To: 2399}}},
		{LineID: "dividends_payable", Title: "Dividends payable", Includes: []int{2500}},
		{LineID: "loans_long_term", Title: "Long-term borrowings", Ranges: []model.CodeRange{{From: 2600, To: 2699}}},
		{LineID: "other_liabilities", Title: "Other liabilities", Ranges: []model.CodeRange{{From: 2700, To: 2999}}},

		{LineID: "share_capital", Title: "Share capital", Ranges: []model.CodeRange{{From: 3000, To: 3099}}},
		{LineID: "reserves", Title: "Reserves", Ranges: []model.CodeRange{{From: 3100, To: 3499}}},
		{LineID: "retained_earnings", Title: "Retained earnings", Ranges: []model.CodeRange{{From: 3500, To: 3999}}},

		{LineID: "revenue", Title: "Revenue", Ranges: []model.CodeRange{{From: 4000, To: 4499}}},
		{LineID: "other_income", Title: "Other income", Ranges: []model.CodeRange{{From: 4500, To: 4999}}},

		{LineID: "cost_of_sales", Title: "Cost of sales", Ranges: []model.CodeRange{{From: 5000, To: 5099}}},
		{LineID: "operating_expenses", Title: "Operating expenses", Ranges: []model.CodeRange{{From: 5100, To: 5799}}},
		{LineID: "finance_costs", Title: "Finance costs", Ranges: []model.CodeRange{{From: 5800, To: 5899}}},
		{LineID: "other_expenses", Title: "Other expenses", Ranges: []model.CodeRange{{From: 5900, To: 5999}}},
	}
}

// DefaultSet returns the seed catalog as an immutable Set.
func DefaultSet() *Set {
	return NewSet(DefaultLines())
}
