package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	portssvc "github.com/finwise-app/finwise_backend/internal/core/ports/services"
	"github.com/finwise-app/finwise_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// BudgetService manages percentage-of-income budget targets and computes
// their monthly status.
type BudgetService struct {
	budgetRepo    portsrepo.BudgetRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
	userRepo      portsrepo.UserRepositoryFacade
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, reportingRepo portsrepo.ReportingRepository, userRepo portsrepo.UserRepositoryFacade) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo, reportingRepo: reportingRepo, userRepo: userRepo}
}

var _ portssvc.BudgetSvcFacade = (*BudgetService)(nil)

// CreateBudget sets a budget target for one category in one month. The sum of
// a user's targets for the month must not exceed 100 percent.
func (s *BudgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if err := validateTargetPercent(req.TargetPercent); err != nil {
		return nil, err
	}
	if err := s.validateMonthTotal(ctx, userID, req.Month, req.TargetPercent, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:      uuid.NewString(),
		UserID:        userID,
		CategoryID:    req.CategoryID,
		TargetPercent: req.TargetPercent,
		Month:         req.Month,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget in service: %w", err)
	}
	return &budget, nil
}

// UpdateBudget changes the target of an existing budget.
func (s *BudgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.getOwnedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.TargetPercent != nil {
		if err := validateTargetPercent(*req.TargetPercent); err != nil {
			return nil, err
		}
		if err := s.validateMonthTotal(ctx, userID, budget.Month, *req.TargetPercent, budget.BudgetID); err != nil {
			return nil, err
		}
		budget.TargetPercent = *req.TargetPercent
	}
	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		return nil, fmt.Errorf("failed to update budget in service: %w", err)
	}
	return budget, nil
}

// DeleteBudget removes one of the user's budgets.
func (s *BudgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if _, err := s.getOwnedBudget(ctx, userID, budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		return fmt.Errorf("failed to delete budget in service: %w", err)
	}
	return nil
}

// GetBudgetStatus joins a month's budgets with the month's actuals, all in
// the user's default currency. A budget whose target amount is zero reports
// zero utilization.
func (s *BudgetService) GetBudgetStatus(ctx context.Context, userID string, month string) ([]domain.BudgetStatus, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.ListBudgetsByMonth(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets in service: %w", err)
	}
	if len(budgets) == 0 {
		return []domain.BudgetStatus{}, nil
	}

	income, err := s.reportingRepo.SumIncomeForMonth(ctx, userID, month, user.DefaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income in service: %w", err)
	}
	spendByCategory, err := s.reportingRepo.SumExpensesByCategoryForMonth(ctx, userID, month, user.DefaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses in service: %w", err)
	}

	statuses := make([]domain.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		target := income.Mul(b.TargetPercent).Div(oneHundred).Round(amountScale)
		actual := spendByCategory[b.CategoryID]
		utilization := decimal.Zero
		if target.IsPositive() {
			utilization = actual.Div(target).Mul(oneHundred).Round(amountScale)
		}
		statuses = append(statuses, domain.BudgetStatus{
			Budget:       b,
			TargetAmount: target,
			ActualSpend:  actual,
			Utilization:  utilization,
		})
	}
	return statuses, nil
}

func (s *BudgetService) getOwnedBudget(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return budget, nil
}

func validateTargetPercent(p decimal.Decimal) error {
	if !p.IsPositive() || p.GreaterThan(oneHundred) {
		return fmt.Errorf("%w: targetPercent must be in (0, 100]", apperrors.ErrValidation)
	}
	return nil
}

// validateMonthTotal rejects a target that would push the month's combined
// targets past 100 percent. excludeBudgetID skips the budget being updated.
func (s *BudgetService) validateMonthTotal(ctx context.Context, userID, month string, newTarget decimal.Decimal, excludeBudgetID string) error {
	budgets, err := s.budgetRepo.ListBudgetsByMonth(ctx, userID, month)
	if err != nil {
		return fmt.Errorf("failed to list budgets in service: %w", err)
	}
	total := newTarget
	for _, b := range budgets {
		if b.BudgetID == excludeBudgetID {
			continue
		}
		total = total.Add(b.TargetPercent)
	}
	if total.GreaterThan(oneHundred) {
		return fmt.Errorf("%w: month's budget targets would exceed 100 percent", apperrors.ErrValidation)
	}
	return nil
}
