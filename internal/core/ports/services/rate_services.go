package services

import (
	"context"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateCacheSvc avoids redundant network calls for recently fetched rates.
type RateCacheSvc interface {
	// Get returns the cached entry for a source currency if present and not
	// expired; ok is false otherwise. No side effects.
	Get(ctx context.Context, fromCurrency string) (entry *domain.RateCacheEntry, ok bool, err error)

	// Put merges the rate into the entry for fromCurrency (creating it if
	// absent) and refreshes the entry's single timestamp to now.
	Put(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error
}

// RateFetcher obtains a current conversion rate from the external provider.
// Implementations write the fetched rate into the rate cache before
// returning it. A failure is surfaced immediately; there are no retries.
type RateFetcher interface {
	FetchRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
}
