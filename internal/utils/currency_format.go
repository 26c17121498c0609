package utils

import (
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the display precision of
// the given currency. Storage keeps 2 decimal places for every currency; this
// only affects presentation (IDR shows whole rupiah).
// Example: amount 12.3456 with USD (2 places) returns "12.35"
// Example: amount 12.3456 with IDR (0 places) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.Round(int32(currency.DecimalPlaces)).StringFixed(int32(currency.DecimalPlaces))
}

// FormatWithPrecision formats an amount with the given precision.
// This is a convenience function when you only have the precision value.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}
