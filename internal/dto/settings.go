package dto

import (
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateCurrencyPreferenceRequest asks to change the user's default currency.
// Accepting it triggers re-denomination of every historical record.
type UpdateCurrencyPreferenceRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,supportedcurrency"`
}

// SettingsResponse reports the user's current preferences.
type SettingsResponse struct {
	DefaultCurrency string `json:"defaultCurrency"`
}

// ConversionResultResponse reports what a completed re-denomination did.
type ConversionResultResponse struct {
	FromCurrency      string          `json:"fromCurrency"`
	ToCurrency        string          `json:"toCurrency"`
	Rate              decimal.Decimal `json:"rate"`
	ExpensesConverted int             `json:"expensesConverted"`
	IncomeConverted   int             `json:"incomeConverted"`
}

// ToConversionResultResponse converts a domain.ConversionResult to its DTO
func ToConversionResultResponse(r *domain.ConversionResult) ConversionResultResponse {
	return ConversionResultResponse{
		FromCurrency:      r.FromCurrency,
		ToCurrency:        r.ToCurrency,
		Rate:              r.Rate,
		ExpensesConverted: r.ExpensesConverted,
		IncomeConverted:   r.IncomeConverted,
	}
}
