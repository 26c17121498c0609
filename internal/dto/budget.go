package dto

import (
	"time"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to set a budget target.
type CreateBudgetRequest struct {
	CategoryID    string          `json:"categoryID" binding:"required,uuid"`
	TargetPercent decimal.Decimal `json:"targetPercent" binding:"required"`
	Month         string          `json:"month" binding:"required,datetime=2006-01"`
}

// UpdateBudgetRequest defines the editable fields of a budget.
type UpdateBudgetRequest struct {
	TargetPercent *decimal.Decimal `json:"targetPercent"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID      string          `json:"budgetID"`
	CategoryID    string          `json:"categoryID"`
	TargetPercent decimal.Decimal `json:"targetPercent"`
	Month         string          `json:"month"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// BudgetStatusResponse is a budget joined with the month's actuals.
type BudgetStatusResponse struct {
	BudgetResponse
	TargetAmount decimal.Decimal `json:"targetAmount"`
	ActualSpend  decimal.Decimal `json:"actualSpend"`
	Utilization  decimal.Decimal `json:"utilization"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:      b.BudgetID,
		CategoryID:    b.CategoryID,
		TargetPercent: b.TargetPercent,
		Month:         b.Month,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.LastUpdatedAt,
	}
}

// ToBudgetStatusResponse converts a domain.BudgetStatus to its DTO
func ToBudgetStatusResponse(s *domain.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		BudgetResponse: ToBudgetResponse(&s.Budget),
		TargetAmount:   s.TargetAmount,
		ActualSpend:    s.ActualSpend,
		Utilization:    s.Utilization,
	}
}
