package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
)

func TestFormatWithCurrencyPrecision(t *testing.T) {
	idr, ok := domain.SupportedCurrency(domain.CurrencyIDR)
	assert.True(t, ok)
	usd, ok := domain.SupportedCurrency(domain.CurrencyUSD)
	assert.True(t, ok)

	amount := decimal.RequireFromString("1500000.50")
	assert.Equal(t, "1500001", FormatWithCurrencyPrecision(amount, idr), "IDR should round to whole rupiah")
	assert.Equal(t, "1500000.50", FormatWithCurrencyPrecision(amount, usd), "USD should keep two decimal places")

	negative := decimal.RequireFromString("-12.345")
	assert.Equal(t, "-12.35", FormatWithCurrencyPrecision(negative, usd))
}

func TestFormatWithPrecision(t *testing.T) {
	amount := decimal.RequireFromString("12.3456")
	assert.Equal(t, "12.35", FormatWithPrecision(amount, 2))
	assert.Equal(t, "12", FormatWithPrecision(amount, 0))
}
