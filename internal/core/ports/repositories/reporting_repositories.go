package repositories

import (
	"context"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository performs read-only aggregations over monetary records.
// All sums are restricted to a single currency; cross-currency rollups are
// not performed at read time.
type ReportingRepository interface {
	// GetMonthlySummary aggregates a user's expenses and income for one month
	// ("YYYY-MM") in the given currency, grouped by category.
	GetMonthlySummary(ctx context.Context, userID string, month string, currencyCode string) (*domain.MonthlySummary, error)

	// SumIncomeForMonth totals a user's income for one month in one currency.
	SumIncomeForMonth(ctx context.Context, userID string, month string, currencyCode string) (decimal.Decimal, error)

	// SumExpensesByCategoryForMonth totals a user's expenses per category for
	// one month in one currency, keyed by category ID.
	SumExpensesByCategoryForMonth(ctx context.Context, userID string, month string, currencyCode string) (map[string]decimal.Decimal, error)
}
