package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	portssvc "github.com/finwise-app/finwise_backend/internal/core/ports/services"
	"github.com/finwise-app/finwise_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// amountScale is the number of decimal places kept after conversion. Storage
// precision is uniform across currencies; display precision is not, and is
// handled elsewhere.
const amountScale = 2

// ConversionService re-prices all of a user's monetary records when their
// default currency changes. One rate is resolved for the whole batch via
// cache-then-fetch; expenses are persisted before income records, strictly
// sequentially, so the failure boundary between the two upserts is
// well-defined. There is no rollback across the two collections and no
// per-user locking: concurrent conversions for the same user are
// last-write-wins.
type ConversionService struct {
	currencySvc  portssvc.CurrencyReaderSvc
	rateCache    portssvc.RateCacheSvc
	rateFetcher  portssvc.RateFetcher
	expenseStore portsrepo.MonetaryRecordStore
	incomeStore  portsrepo.MonetaryRecordStore
}

// NewConversionService creates a new ConversionService.
func NewConversionService(
	currencySvc portssvc.CurrencyReaderSvc,
	rateCache portssvc.RateCacheSvc,
	rateFetcher portssvc.RateFetcher,
	expenseStore portsrepo.MonetaryRecordStore,
	incomeStore portsrepo.MonetaryRecordStore,
) *ConversionService {
	return &ConversionService{
		currencySvc:  currencySvc,
		rateCache:    rateCache,
		rateFetcher:  rateFetcher,
		expenseStore: expenseStore,
		incomeStore:  incomeStore,
	}
}

var _ portssvc.ConversionSvcFacade = (*ConversionService)(nil)

// ConvertAllRecords converts every expense and income record the user owns
// in fromCurrency into toCurrency at a single resolved rate.
//
// Failure semantics: a rate or load failure aborts before any record is
// mutated. An expense upsert failure leaves income untouched. An income
// upsert failure after expenses were written surfaces as
// apperrors.ErrPartialConversion; retrying the whole operation is safe
// because converted records no longer match the fromCurrency filter.
func (s *ConversionService) ConvertAllRecords(ctx context.Context, userID, fromCurrency, toCurrency string) (*domain.ConversionResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.currencySvc.ValidateSupported(fromCurrency); err != nil {
		return nil, err
	}
	if err := s.currencySvc.ValidateSupported(toCurrency); err != nil {
		return nil, err
	}

	result := &domain.ConversionResult{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Rate:         decimal.NewFromInt(1),
	}

	if fromCurrency == toCurrency {
		return result, nil
	}

	rate, err := s.resolveRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}
	result.Rate = rate

	// Load both collections before touching either, so a load failure
	// never leaves a partially converted dataset.
	expenses, err := s.loadRecords(ctx, s.expenseStore, userID, fromCurrency)
	if err != nil {
		return nil, err
	}
	income, err := s.loadRecords(ctx, s.incomeStore, userID, fromCurrency)
	if err != nil {
		return nil, err
	}

	logger.Info("Starting currency conversion",
		slog.String("from", fromCurrency),
		slog.String("to", toCurrency),
		slog.Int("expenses", len(expenses)),
		slog.Int("income_records", len(income)),
	)

	now := time.Now()
	repriceRecords(expenses, rate, toCurrency, userID, now)
	repriceRecords(income, rate, toCurrency, userID, now)

	// Expenses first, then income. A failure between the two upserts
	// leaves expenses converted and income unchanged.
	if err := s.persistRecords(ctx, s.expenseStore, expenses); err != nil {
		return nil, err
	}
	result.ExpensesConverted = len(expenses)

	if err := s.persistRecords(ctx, s.incomeStore, income); err != nil {
		if result.ExpensesConverted > 0 {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrPartialConversion, err)
		}
		return nil, err
	}
	result.IncomeConverted = len(income)

	logger.Info("Currency conversion completed",
		slog.Int("expenses_converted", result.ExpensesConverted),
		slog.Int("income_converted", result.IncomeConverted),
	)
	return result, nil
}

// resolveRate answers the single scalar rate for the batch: fresh cache
// entry if one holds the target pair, otherwise one live fetch (which writes
// the cache itself). A cache read failure counts as a miss.
func (s *ConversionService) resolveRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	entry, ok, err := s.rateCache.Get(ctx, fromCurrency)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Rate cache read failed, falling back to fetch",
			slog.String("from", fromCurrency),
			slog.String("error", err.Error()),
		)
	} else if ok {
		if rate, found := entry.Rates[toCurrency]; found {
			return rate, nil
		}
	}
	return s.rateFetcher.FetchRate(ctx, fromCurrency, toCurrency)
}

func (s *ConversionService) loadRecords(ctx context.Context, store portsrepo.MonetaryRecordStore, userID, currency string) ([]domain.MonetaryRecord, error) {
	records, err := store.ListByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load %s records: %v", apperrors.ErrPersistence, store.Kind(), err)
	}
	return records, nil
}

func (s *ConversionService) persistRecords(ctx context.Context, store portsrepo.MonetaryRecordStore, records []domain.MonetaryRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := store.BulkUpsert(ctx, records); err != nil {
		return fmt.Errorf("%w: failed to upsert %s records: %v", apperrors.ErrPersistence, store.Kind(), err)
	}
	return nil
}

// repriceRecords rewrites each record in place: amount scaled by rate and
// rounded half away from zero to two decimal places, currency retagged so
// amount and currency never disagree.
func repriceRecords(records []domain.MonetaryRecord, rate decimal.Decimal, toCurrency, userID string, now time.Time) {
	for i := range records {
		records[i].Amount = records[i].Amount.Mul(rate).Round(amountScale)
		records[i].Currency = toCurrency
		records[i].LastUpdatedAt = now
		records[i].LastUpdatedBy = userID
	}
}
