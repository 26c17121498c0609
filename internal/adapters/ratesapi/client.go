// Package ratesapi implements the rate fetcher against the
// exchangerate-api.com v6 pair endpoint.
package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	portssvc "github.com/finwise-app/finwise_backend/internal/core/ports/services"
	"github.com/finwise-app/finwise_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// pairResponse mirrors the provider's pair-conversion payload. ConversionRate
// is a pointer so a missing field is distinguishable from a zero rate.
type pairResponse struct {
	Result         string           `json:"result"`
	BaseCode       string           `json:"base_code"`
	TargetCode     string           `json:"target_code"`
	ConversionRate *decimal.Decimal `json:"conversion_rate"`
	ErrorType      string           `json:"error-type"`
}

// Client fetches live conversion rates and writes them through to the rate
// cache. It implements portssvc.RateFetcher.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      portssvc.RateCacheSvc
}

// NewClient creates a rate fetcher for the given provider endpoint.
func NewClient(baseURL, apiKey string, cache portssvc.RateCacheSvc) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		cache:      cache,
	}
}

var _ portssvc.RateFetcher = (*Client)(nil)

// FetchRate issues one request for the pair and returns the quoted rate.
// Provider business errors and non-success statuses surface as
// apperrors.ErrProvider; a success response without a numeric
// conversion_rate surfaces as apperrors.ErrInvalidResponse. No retries.
func (c *Client) FetchRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/pair/%s/%s", c.baseURL, c.apiKey, fromCurrency, toCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate request failed for %s/%s: %w", fromCurrency, toCurrency, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read rate response: %w", err)
	}

	var payload pairResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		if resp.StatusCode != http.StatusOK {
			return decimal.Zero, fmt.Errorf("%w: status %d", apperrors.ErrProvider, resp.StatusCode)
		}
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrInvalidResponse, err)
	}

	if resp.StatusCode != http.StatusOK || payload.ErrorType != "" || payload.Result == "error" {
		msg := payload.ErrorType
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrProvider, msg)
	}

	if payload.ConversionRate == nil {
		return decimal.Zero, fmt.Errorf("%w: missing conversion_rate for %s/%s", apperrors.ErrInvalidResponse, fromCurrency, toCurrency)
	}
	rate := *payload.ConversionRate

	// Fresh quote goes into the cache before we hand it back. A cache write
	// failure does not invalidate the quote itself.
	if err := c.cache.Put(ctx, fromCurrency, toCurrency, rate); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to cache fetched rate",
			slog.String("from", fromCurrency),
			slog.String("to", toCurrency),
			slog.String("error", err.Error()),
		)
	}

	return rate, nil
}
