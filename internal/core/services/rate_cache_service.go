package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	portssvc "github.com/finwise-app/finwise_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// RateCacheService keeps recently fetched conversion rates so a rate quoted
// within the TTL is never re-fetched. Entries are keyed by source currency
// and carry one shared timestamp, so refreshing one pair also refreshes
// every other cached target of that source.
type RateCacheService struct {
	cacheRepo portsrepo.RateCacheRepository
}

// NewRateCacheService creates a new RateCacheService.
func NewRateCacheService(cacheRepo portsrepo.RateCacheRepository) *RateCacheService {
	return &RateCacheService{cacheRepo: cacheRepo}
}

var _ portssvc.RateCacheSvc = (*RateCacheService)(nil)

// Get returns the cached entry for a source currency if present and not
// older than the TTL; ok is false otherwise. Expired entries are left in
// place for the next Put to overwrite.
func (s *RateCacheService) Get(ctx context.Context, fromCurrency string) (*domain.RateCacheEntry, bool, error) {
	entry, err := s.cacheRepo.FindRateEntry(ctx, fromCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read rate cache for %s: %w", fromCurrency, err)
	}
	if !entry.IsFresh(time.Now()) {
		return nil, false, nil
	}
	return entry, true, nil
}

// Put merges the rate into the entry for fromCurrency, creating the entry if
// absent, and refreshes the entry's single timestamp to now.
func (s *RateCacheService) Put(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error {
	entry, err := s.cacheRepo.FindRateEntry(ctx, fromCurrency)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to read rate cache for %s: %w", fromCurrency, err)
		}
		entry = &domain.RateCacheEntry{
			FromCurrency: fromCurrency,
			Rates:        make(map[string]decimal.Decimal),
		}
	}
	if entry.Rates == nil {
		entry.Rates = make(map[string]decimal.Decimal)
	}

	entry.Rates[toCurrency] = rate
	entry.FetchedAt = time.Now()

	if err := s.cacheRepo.SaveRateEntry(ctx, *entry); err != nil {
		return fmt.Errorf("failed to save rate cache entry for %s: %w", fromCurrency, err)
	}
	return nil
}
