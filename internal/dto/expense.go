package dto

import (
	"time"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record a new expense.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required,supportedcurrency"`
	Description string          `json:"description" binding:"required"`
	CategoryID  string          `json:"categoryID" binding:"required,uuid"`
	Date        time.Time       `json:"date" binding:"required"`
}

// UpdateExpenseRequest defines the editable fields of an expense. Nil fields
// are left unchanged.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	CategoryID  *string          `json:"categoryID" binding:"omitempty,uuid"`
	Date        *time.Time       `json:"date"`
}

// ListExpensesRequest captures the listing query parameters.
type ListExpensesRequest struct {
	CategoryID string `form:"categoryID" binding:"omitempty,uuid"`
	DateFrom   string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Limit      int    `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	NextToken  string `form:"nextToken"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryID"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListExpensesResponse is a page of expenses plus the token for the next page.
type ListExpensesResponse struct {
	Items     []ExpenseResponse `json:"items"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.RecordID,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Description: e.Description,
		CategoryID:  e.CategoryID,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.LastUpdatedAt,
	}
}
