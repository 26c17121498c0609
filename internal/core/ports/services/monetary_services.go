package services

import (
	"context"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/finwise-app/finwise_backend/internal/dto"
)

// ExpenseSvcFacade provides CRUD over a user's expense records.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, userID string, req dto.ListExpensesRequest) ([]domain.Expense, string, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// IncomeSvcFacade provides CRUD over a user's income records.
type IncomeSvcFacade interface {
	CreateIncome(ctx context.Context, userID string, req dto.CreateIncomeRequest) (*domain.Income, error)
	GetIncomeByID(ctx context.Context, userID, incomeID string) (*domain.Income, error)
	ListIncome(ctx context.Context, userID string, req dto.ListIncomeRequest) ([]domain.Income, string, error)
	UpdateIncome(ctx context.Context, userID, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error)
	DeleteIncome(ctx context.Context, userID, incomeID string) error
}
