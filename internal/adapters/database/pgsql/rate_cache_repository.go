package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateCacheRepository stores rate cache entries in the rate_cache table,
// one row per source currency with the target map as JSONB. Entries survive
// process restarts; freshness is the service's concern.
type PgxRateCacheRepository struct {
	pool *pgxpool.Pool
}

// NewRateCacheRepository creates a new PgxRateCacheRepository.
func NewRateCacheRepository(pool *pgxpool.Pool) *PgxRateCacheRepository {
	return &PgxRateCacheRepository{pool: pool}
}

// Ensure implementation matches interface
var _ portsrepo.RateCacheRepository = (*PgxRateCacheRepository)(nil)

// FindRateEntry retrieves the cached entry for a source currency.
func (r *PgxRateCacheRepository) FindRateEntry(ctx context.Context, fromCurrency string) (*domain.RateCacheEntry, error) {
	query := `
		SELECT from_currency, rates, fetched_at
		FROM rate_cache
		WHERE from_currency = $1;
	`
	var entry domain.RateCacheEntry
	var ratesJSON []byte
	err := r.pool.QueryRow(ctx, query, fromCurrency).Scan(
		&entry.FromCurrency,
		&ratesJSON,
		&entry.FetchedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate cache entry for %s: %w", fromCurrency, err)
	}

	if err := json.Unmarshal(ratesJSON, &entry.Rates); err != nil {
		return nil, fmt.Errorf("failed to decode cached rates for %s: %w", fromCurrency, err)
	}
	return &entry, nil
}

// SaveRateEntry upserts the entry for its source currency.
func (r *PgxRateCacheRepository) SaveRateEntry(ctx context.Context, entry domain.RateCacheEntry) error {
	ratesJSON, err := json.Marshal(entry.Rates)
	if err != nil {
		return fmt.Errorf("failed to encode rates for %s: %w", entry.FromCurrency, err)
	}

	query := `
		INSERT INTO rate_cache (from_currency, rates, fetched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (from_currency) DO UPDATE SET
			rates = EXCLUDED.rates,
			fetched_at = EXCLUDED.fetched_at;
	`
	_, err = r.pool.Exec(ctx, query, entry.FromCurrency, ratesJSON, entry.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to save rate cache entry for %s: %w", entry.FromCurrency, err)
	}
	return nil
}
