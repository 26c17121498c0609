package domain

import "github.com/shopspring/decimal"

// ConversionResult reports what a completed re-denomination did.
type ConversionResult struct {
	FromCurrency      string          `json:"fromCurrency"`
	ToCurrency        string          `json:"toCurrency"`
	Rate              decimal.Decimal `json:"rate"`
	ExpensesConverted int             `json:"expensesConverted"`
	IncomeConverted   int             `json:"incomeConverted"`
}
