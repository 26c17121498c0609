package services

import (
	"context"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
)

// ConversionSvcFacade re-prices all of a user's monetary records from one
// currency to another.
type ConversionSvcFacade interface {
	// ConvertAllRecords converts every expense and income record the user
	// owns in fromCurrency into toCurrency at a single resolved rate.
	// Expenses are persisted before income records; a failure between the two
	// upserts leaves a partial state reported as apperrors.ErrPartialConversion.
	ConvertAllRecords(ctx context.Context, userID, fromCurrency, toCurrency string) (*domain.ConversionResult, error)
}
