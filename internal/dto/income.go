package dto

import (
	"time"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the data needed to record new income.
type CreateIncomeRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required,supportedcurrency"`
	Description string          `json:"description" binding:"required"`
	CategoryID  string          `json:"categoryID" binding:"required,uuid"`
	Date        time.Time       `json:"date" binding:"required"`
}

// UpdateIncomeRequest defines the editable fields of an income record. Nil
// fields are left unchanged.
type UpdateIncomeRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	CategoryID  *string          `json:"categoryID" binding:"omitempty,uuid"`
	Date        *time.Time       `json:"date"`
}

// ListIncomeRequest captures the listing query parameters.
type ListIncomeRequest struct {
	CategoryID string `form:"categoryID" binding:"omitempty,uuid"`
	DateFrom   string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Limit      int    `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	NextToken  string `form:"nextToken"`
}

// IncomeResponse defines the data returned for an income record.
type IncomeResponse struct {
	IncomeID    string          `json:"incomeID"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryID"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListIncomeResponse is a page of income records plus the next-page token.
type ListIncomeResponse struct {
	Items     []IncomeResponse `json:"items"`
	NextToken string           `json:"nextToken,omitempty"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:    in.RecordID,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Date:        in.Date,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.LastUpdatedAt,
	}
}
