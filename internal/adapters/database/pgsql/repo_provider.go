package pgsql

import (
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository against one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      NewUserRepository(pool),
		CurrencyRepo:  NewCurrencyRepository(pool),
		RateCacheRepo: NewRateCacheRepository(pool),
		ExpenseRepo:   NewExpenseRepository(pool),
		IncomeRepo:    NewIncomeRepository(pool),
		CategoryRepo:  NewCategoryRepository(pool),
		BudgetRepo:    NewBudgetRepository(pool),
		ReportingRepo: NewReportingRepository(pool),
	}
}
