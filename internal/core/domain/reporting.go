package domain

import "github.com/shopspring/decimal"

// CategoryTotal is a per-category rollup of monetary records for one month.
type CategoryTotal struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// MonthlySummary aggregates a user's records for one month in the user's
// default currency. Records denominated in other currencies are excluded:
// conversion happens through the re-denomination engine, never at read time.
type MonthlySummary struct {
	Month         string          `json:"month"` // "YYYY-MM"
	Currency      string          `json:"currency"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	Net           decimal.Decimal `json:"net"`
	ByCategory    []CategoryTotal `json:"byCategory"`
}
