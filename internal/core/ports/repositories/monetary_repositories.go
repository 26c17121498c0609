package repositories

import (
	"context"
	"time"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
)

// ListRecordsFilter narrows a monetary record listing.
type ListRecordsFilter struct {
	CategoryID string     // empty means any category
	DateFrom   *time.Time // inclusive
	DateTo     *time.Time // inclusive
	Limit      int
	// NextToken is a keyset pagination token (date|createdAt) produced by a
	// previous listing; empty means start from the newest record.
	NextToken string
}

// MonetaryRecordStore is the persistence handle the conversion engine
// re-prices a collection through. Expense and income repositories both
// implement it, so the engine runs one generic routine twice instead of two
// hand-duplicated code paths.
type MonetaryRecordStore interface {
	// Kind identifies the collection for error reporting.
	Kind() domain.RecordKind

	// ListByUserAndCurrency returns every record of this collection owned by
	// the user and denominated in the given currency.
	ListByUserAndCurrency(ctx context.Context, userID string, currencyCode string) ([]domain.MonetaryRecord, error)

	// BulkUpsert persists the given records in a single call.
	BulkUpsert(ctx context.Context, records []domain.MonetaryRecord) error
}

// ExpenseReader defines read operations for expense records
type ExpenseReader interface {
	// FindExpenseByID retrieves a single expense.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a page of the user's expenses, newest first.
	ListExpenses(ctx context.Context, userID string, filter ListRecordsFilter) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense records
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense persists changes to an existing expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces,
// including the store handle used by the conversion engine.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
	MonetaryRecordStore
}

// IncomeReader defines read operations for income records
type IncomeReader interface {
	// FindIncomeByID retrieves a single income record.
	FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)

	// ListIncome retrieves a page of the user's income records, newest first.
	ListIncome(ctx context.Context, userID string, filter ListRecordsFilter) ([]domain.Income, error)
}

// IncomeWriter defines write operations for income records
type IncomeWriter interface {
	// SaveIncome persists a new income record.
	SaveIncome(ctx context.Context, income domain.Income) error

	// UpdateIncome persists changes to an existing income record.
	UpdateIncome(ctx context.Context, income domain.Income) error

	// DeleteIncome removes an income record.
	DeleteIncome(ctx context.Context, incomeID string) error
}

// IncomeRepositoryFacade combines all income-related repository interfaces,
// including the store handle used by the conversion engine.
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
	MonetaryRecordStore
}
