package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxReportingRepository performs read-only aggregations using pgxpool.
type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// NewReportingRepository creates a new PgxReportingRepository.
func NewReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

// Ensure implementation matches interface
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// monthBounds converts "YYYY-MM" into [start, end) timestamps.
func monthBounds(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid month %q", apperrors.ErrValidation, month)
	}
	return start, start.AddDate(0, 1, 0), nil
}

// GetMonthlySummary aggregates a user's expenses and income for one month in
// the given currency, with the expense breakdown grouped by category.
func (r *PgxReportingRepository) GetMonthlySummary(ctx context.Context, userID string, month string, currencyCode string) (*domain.MonthlySummary, error) {
	start, end, err := monthBounds(month)
	if err != nil {
		return nil, err
	}

	summary := &domain.MonthlySummary{
		Month:    month,
		Currency: currencyCode,
	}

	totalsQuery := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM expenses
				WHERE user_id = $1 AND currency = $2 AND date >= $3 AND date < $4), 0),
			COALESCE((SELECT SUM(amount) FROM income_records
				WHERE user_id = $1 AND currency = $2 AND date >= $3 AND date < $4), 0);
	`
	err = r.pool.QueryRow(ctx, totalsQuery, userID, currencyCode, start, end).Scan(
		&summary.TotalExpenses,
		&summary.TotalIncome,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly totals: %w", err)
	}
	summary.Net = summary.TotalIncome.Sub(summary.TotalExpenses)

	byCategoryQuery := `
		SELECT e.category_id, COALESCE(c.name, ''), SUM(e.amount)
		FROM expenses e
		LEFT JOIN categories c ON c.category_id = e.category_id
		WHERE e.user_id = $1 AND e.currency = $2 AND e.date >= $3 AND e.date < $4
		GROUP BY e.category_id, c.name
		ORDER BY SUM(e.amount) DESC;
	`
	rows, err := r.pool.Query(ctx, byCategoryQuery, userID, currencyCode, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}
	defer rows.Close()

	summary.ByCategory, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategoryTotal, error) {
		var ct domain.CategoryTotal
		err := row.Scan(&ct.CategoryID, &ct.CategoryName, &ct.Total)
		return ct, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan category totals: %w", err)
	}

	return summary, nil
}

// SumIncomeForMonth totals a user's income for one month in one currency.
func (r *PgxReportingRepository) SumIncomeForMonth(ctx context.Context, userID string, month string, currencyCode string) (decimal.Decimal, error) {
	start, end, err := monthBounds(month)
	if err != nil {
		return decimal.Zero, err
	}

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM income_records
		WHERE user_id = $1 AND currency = $2 AND date >= $3 AND date < $4;
	`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, userID, currencyCode, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum income for month %s: %w", month, err)
	}
	return total, nil
}

// SumExpensesByCategoryForMonth totals a user's expenses per category for one
// month in one currency, keyed by category ID.
func (r *PgxReportingRepository) SumExpensesByCategoryForMonth(ctx context.Context, userID string, month string, currencyCode string) (map[string]decimal.Decimal, error) {
	start, end, err := monthBounds(month)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT category_id, SUM(amount)
		FROM expenses
		WHERE user_id = $1 AND currency = $2 AND date >= $3 AND date < $4
		GROUP BY category_id;
	`
	rows, err := r.pool.Query(ctx, query, userID, currencyCode, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category for month %s: %w", month, err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var categoryID string
		var total decimal.Decimal
		if err := rows.Scan(&categoryID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category expense total: %w", err)
		}
		totals[categoryID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category expense totals: %w", err)
	}
	return totals, nil
}
