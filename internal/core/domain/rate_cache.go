package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateCacheTTL is how long a cached rate entry stays servable.
const RateCacheTTL = 15 * time.Minute

// RateCacheEntry holds the cached conversion rates for one source currency.
// The whole entry shares a single FetchedAt timestamp, so fetching one pair
// refreshes freshness for every cached target of that source.
type RateCacheEntry struct {
	FromCurrency string                     `json:"fromCurrency"`
	Rates        map[string]decimal.Decimal `json:"rates"` // targetCode -> rate
	FetchedAt    time.Time                  `json:"fetchedAt"`
}

// IsFresh reports whether the entry may still be served at the given instant.
func (e RateCacheEntry) IsFresh(now time.Time) bool {
	return now.Sub(e.FetchedAt) <= RateCacheTTL
}
