package repositories

import (
	"context"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
)

// RateCacheRepository is the durable key-value store backing the rate cache.
// Entries are keyed by source currency and survive process restarts. The
// repository stores entries verbatim; freshness is decided by the service.
type RateCacheRepository interface {
	// FindRateEntry retrieves the cached entry for a source currency.
	// Returns apperrors.ErrNotFound when no entry exists.
	FindRateEntry(ctx context.Context, fromCurrency string) (*domain.RateCacheEntry, error)

	// SaveRateEntry upserts the entry for its source currency.
	SaveRateEntry(ctx context.Context, entry domain.RateCacheEntry) error
}
