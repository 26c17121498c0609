package services

import (
	"context"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/finwise-app/finwise_backend/internal/dto"
)

// BudgetSvcFacade manages percentage-of-income budget targets.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error

	// GetBudgetStatus joins a month's budgets with its actuals, all in the
	// user's default currency.
	GetBudgetStatus(ctx context.Context, userID string, month string) ([]domain.BudgetStatus, error)
}
