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

// IncomeService provides CRUD over a user's income records.
type IncomeService struct {
	incomeRepo  portsrepo.IncomeRepositoryFacade
	currencySvc portssvc.CurrencyReaderSvc
}

// NewIncomeService creates a new IncomeService.
func NewIncomeService(incomeRepo portsrepo.IncomeRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc) *IncomeService {
	return &IncomeService{incomeRepo: incomeRepo, currencySvc: currencySvc}
}

var _ portssvc.IncomeSvcFacade = (*IncomeService)(nil)

// CreateIncome records new income for the user.
func (s *IncomeService) CreateIncome(ctx context.Context, userID string, req dto.CreateIncomeRequest) (*domain.Income, error) {
	if err := s.currencySvc.ValidateSupported(req.Currency); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	income := domain.Income{
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

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income in service: %w", err)
	}
	return &income, nil
}

// GetIncomeByID retrieves one of the user's income records.
func (s *IncomeService) GetIncomeByID(ctx context.Context, userID, incomeID string) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		return nil, err
	}
	if income.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return income, nil
}

// ListIncome returns a page of the user's income records plus the next-page token.
func (s *IncomeService) ListIncome(ctx context.Context, userID string, req dto.ListIncomeRequest) ([]domain.Income, string, error) {
	filter, err := listFilterFromRequest(req.CategoryID, req.DateFrom, req.DateTo, req.Limit, req.NextToken)
	if err != nil {
		return nil, "", err
	}

	income, err := s.incomeRepo.ListIncome(ctx, userID, filter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list income in service: %w", err)
	}

	nextToken := ""
	if len(income) == filter.Limit {
		last := income[len(income)-1]
		nextToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return income, nextToken, nil
}

// UpdateIncome applies partial edits to one of the user's income records.
func (s *IncomeService) UpdateIncome(ctx context.Context, userID, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error) {
	income, err := s.GetIncomeByID(ctx, userID, incomeID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		income.Amount = req.Amount.Round(amountScale)
	}
	if req.Description != nil {
		income.Description = *req.Description
	}
	if req.CategoryID != nil {
		income.CategoryID = *req.CategoryID
	}
	if req.Date != nil {
		income.Date = *req.Date
	}
	income.LastUpdatedAt = time.Now()
	income.LastUpdatedBy = userID

	if err := s.incomeRepo.UpdateIncome(ctx, *income); err != nil {
		return nil, fmt.Errorf("failed to update income in service: %w", err)
	}
	return income, nil
}

// DeleteIncome removes one of the user's income records.
func (s *IncomeService) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	if _, err := s.GetIncomeByID(ctx, userID, incomeID); err != nil {
		return err
	}
	if err := s.incomeRepo.DeleteIncome(ctx, incomeID); err != nil {
		return fmt.Errorf("failed to delete income in service: %w", err)
	}
	return nil
}
