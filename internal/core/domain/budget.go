package domain

import "github.com/shopspring/decimal"

// Budget is a percentage-of-income target for one category in one month.
// The sum of a user's targets for a month must not exceed 100.
type Budget struct {
	BudgetID      string          `json:"budgetID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`
	CategoryID    string          `json:"categoryID"`
	TargetPercent decimal.Decimal `json:"targetPercent"` // in (0, 100]
	Month         string          `json:"month"`         // "YYYY-MM"
	AuditFields
}

// BudgetStatus is a budget joined with the month's actuals.
type BudgetStatus struct {
	Budget
	TargetAmount decimal.Decimal `json:"targetAmount"` // TargetPercent of month income
	ActualSpend  decimal.Decimal `json:"actualSpend"`
	Utilization  decimal.Decimal `json:"utilization"` // ActualSpend / TargetAmount * 100, 0 if no target
}
