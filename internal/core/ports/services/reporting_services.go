package services

import (
	"context"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
)

// ReportingSvcFacade produces read-only rollups of a user's records.
type ReportingSvcFacade interface {
	// GetMonthlySummary aggregates one month ("YYYY-MM") of the user's
	// records in their default currency.
	GetMonthlySummary(ctx context.Context, userID string, month string) (*domain.MonthlySummary, error)
}
