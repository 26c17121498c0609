package pgsql

import (
	"context"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExpenseRepository implements the expense repository facade over the
// expenses table.
type PgxExpenseRepository struct {
	monetaryStore
}

// NewExpenseRepository creates a new PgxExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{
		monetaryStore: monetaryStore{
			pool:     pool,
			table:    "expenses",
			idColumn: "expense_id",
			kind:     domain.RecordKindExpense,
		},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpense persists a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return r.save(ctx, expense.MonetaryRecord)
}

// FindExpenseByID retrieves a single expense.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	rec, err := r.findByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	return &domain.Expense{MonetaryRecord: *rec}, nil
}

// ListExpenses retrieves a page of the user's expenses, newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, userID string, filter portsrepo.ListRecordsFilter) ([]domain.Expense, error) {
	records, err := r.list(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	expenses := make([]domain.Expense, len(records))
	for i, rec := range records {
		expenses[i] = domain.Expense{MonetaryRecord: rec}
	}
	return expenses, nil
}

// UpdateExpense persists changes to an existing expense.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return r.update(ctx, expense.MonetaryRecord)
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	return r.delete(ctx, expenseID)
}
