package pgsql

import (
	"context"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIncomeRepository implements the income repository facade over the
// income_records table.
type PgxIncomeRepository struct {
	monetaryStore
}

// NewIncomeRepository creates a new PgxIncomeRepository.
func NewIncomeRepository(pool *pgxpool.Pool) *PgxIncomeRepository {
	return &PgxIncomeRepository{
		monetaryStore: monetaryStore{
			pool:     pool,
			table:    "income_records",
			idColumn: "income_id",
			kind:     domain.RecordKindIncome,
		},
	}
}

// Ensure implementation matches interface
var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

// SaveIncome persists a new income record.
func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	return r.save(ctx, income.MonetaryRecord)
}

// FindIncomeByID retrieves a single income record.
func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	rec, err := r.findByID(ctx, incomeID)
	if err != nil {
		return nil, err
	}
	return &domain.Income{MonetaryRecord: *rec}, nil
}

// ListIncome retrieves a page of the user's income records, newest first.
func (r *PgxIncomeRepository) ListIncome(ctx context.Context, userID string, filter portsrepo.ListRecordsFilter) ([]domain.Income, error) {
	records, err := r.list(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	income := make([]domain.Income, len(records))
	for i, rec := range records {
		income[i] = domain.Income{MonetaryRecord: rec}
	}
	return income, nil
}

// UpdateIncome persists changes to an existing income record.
func (r *PgxIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	return r.update(ctx, income.MonetaryRecord)
}

// DeleteIncome removes an income record.
func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	return r.delete(ctx, incomeID)
}
