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
	"github.com/finwise-app/finwise_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

// ExpenseService provides CRUD over a user's expense records.
type ExpenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	currencySvc portssvc.CurrencyReaderSvc
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, currencySvc: currencySvc}
}

var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

// CreateExpense records a new expense for the user.
func (s *ExpenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if err := s.currencySvc.ValidateSupported(req.Currency); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	expense := domain.Expense{
		MonetaryRecord: domain.MonetaryRecord{
			RecordID:    uuid.NewString(),
			UserID:      userID,
			Amount:      req.Amount.Round(amountScale),
			Currency:    req.Currency,
			Description: req.Description,
			CategoryID:  req.CategoryID,
			Date:        req.Date,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense in service: %w", err)
	}
	return &expense, nil
}

// GetExpenseByID retrieves one of the user's expenses.
func (s *ExpenseService) GetExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return expense, nil
}

// ListExpenses returns a page of the user's expenses plus the next-page token.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID string, req dto.ListExpensesRequest) ([]domain.Expense, string, error) {
	filter, err := listFilterFromRequest(req.CategoryID, req.DateFrom, req.DateTo, req.Limit, req.NextToken)
	if err != nil {
		return nil, "", err
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, userID, filter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list expenses in service: %w", err)
	}

	nextToken := ""
	if len(expenses) == filter.Limit {
		last := expenses[len(expenses)-1]
		nextToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return expenses, nextToken, nil
}

// UpdateExpense applies partial edits to one of the user's expenses.
func (s *ExpenseService) UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.GetExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = req.Amount.Round(amountScale)
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.CategoryID != nil {
		expense.CategoryID = *req.CategoryID
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense in service: %w", err)
	}
	return expense, nil
}

// DeleteExpense removes one of the user's expenses.
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	if _, err := s.GetExpenseByID(ctx, userID, expenseID); err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense in service: %w", err)
	}
	return nil
}

// listFilterFromRequest converts the listing query parameters shared by the
// expense and income endpoints into a repository filter.
func listFilterFromRequest(categoryID, dateFrom, dateTo string, limit int, nextToken string) (portsrepo.ListRecordsFilter, error) {
	filter := portsrepo.ListRecordsFilter{
		CategoryID: categoryID,
		Limit:      limit,
		NextToken:  nextToken,
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}

	if dateFrom != "" {
		from, err := time.Parse("2006-01-02", dateFrom)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid dateFrom", apperrors.ErrValidation)
		}
		filter.DateFrom = &from
	}
	if dateTo != "" {
		to, err := time.Parse("2006-01-02", dateTo)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid dateTo", apperrors.ErrValidation)
		}
		filter.DateTo = &to
	}
	return filter, nil
}
