package dto

import (
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/finwise-app/finwise_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CategoryTotalResponse is a per-category total within a monthly summary.
type CategoryTotalResponse struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// MonthlySummaryResponse aggregates one month of records in the user's
// default currency.
type MonthlySummaryResponse struct {
	Month         string                  `json:"month"`
	Currency      string                  `json:"currency"`
	TotalExpenses decimal.Decimal         `json:"totalExpenses"`
	TotalIncome   decimal.Decimal         `json:"totalIncome"`
	Net           decimal.Decimal         `json:"net"`
	NetDisplay    string                  `json:"netDisplay"`
	ByCategory    []CategoryTotalResponse `json:"byCategory"`
}

// ToMonthlySummaryResponse converts a domain.MonthlySummary to its DTO
func ToMonthlySummaryResponse(s *domain.MonthlySummary) MonthlySummaryResponse {
	byCategory := make([]CategoryTotalResponse, len(s.ByCategory))
	for i, ct := range s.ByCategory {
		byCategory[i] = CategoryTotalResponse{
			CategoryID:   ct.CategoryID,
			CategoryName: ct.CategoryName,
			Total:        ct.Total,
		}
	}
	// Display precision follows the currency (IDR shows whole rupiah);
	// stored amounts always keep two decimal places.
	cur, ok := domain.SupportedCurrency(s.Currency)
	if !ok {
		cur = domain.Currency{CurrencyCode: s.Currency, DecimalPlaces: 2}
	}
	return MonthlySummaryResponse{
		Month:         s.Month,
		Currency:      s.Currency,
		TotalExpenses: s.TotalExpenses,
		TotalIncome:   s.TotalIncome,
		Net:           s.Net,
		NetDisplay:    utils.FormatWithCurrencyPrecision(s.Net, cur),
		ByCategory:    byCategory,
	}
}
