package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/finwise-app/finwise_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateCacheRepository ---
type MockRateCacheRepository struct {
	mock.Mock
}

func (m *MockRateCacheRepository) FindRateEntry(ctx context.Context, fromCurrency string) (*domain.RateCacheEntry, error) {
	args := m.Called(ctx, fromCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateCacheEntry), args.Error(1)
}

func (m *MockRateCacheRepository) SaveRateEntry(ctx context.Context, entry domain.RateCacheEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Test Suite ---
type RateCacheServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRateCacheRepository
	service  *services.RateCacheService
}

func (suite *RateCacheServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateCacheRepository)
	suite.service = services.NewRateCacheService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *RateCacheServiceTestSuite) TestGet_FreshEntryIsServed() {
	ctx := context.Background()
	entry := &domain.RateCacheEntry{
		FromCurrency: "IDR",
		Rates:        map[string]decimal.Decimal{"USD": decimal.RequireFromString("0.000065")},
		FetchedAt:    time.Now().Add(-5 * time.Minute),
	}
	suite.mockRepo.On("FindRateEntry", ctx, "IDR").Return(entry, nil).Once()

	got, ok, err := suite.service.Get(ctx, "IDR")

	suite.Require().NoError(err)
	suite.True(ok)
	suite.True(got.Rates["USD"].Equal(decimal.RequireFromString("0.000065")))
}

func (suite *RateCacheServiceTestSuite) TestGet_EntryJustUnderTTLIsFresh() {
	ctx := context.Background()
	entry := &domain.RateCacheEntry{
		FromCurrency: "IDR",
		Rates:        map[string]decimal.Decimal{"USD": decimal.New(65, -6)},
		FetchedAt:    time.Now().Add(-domain.RateCacheTTL + time.Second),
	}
	suite.mockRepo.On("FindRateEntry", ctx, "IDR").Return(entry, nil).Once()

	_, ok, err := suite.service.Get(ctx, "IDR")

	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *RateCacheServiceTestSuite) TestFreshnessBoundaryIsInclusive() {
	// Pinned against a fixed instant: age == TTL is still served, one
	// nanosecond older is not.
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := domain.RateCacheEntry{
		FromCurrency: "IDR",
		Rates:        map[string]decimal.Decimal{"USD": decimal.New(65, -6)},
		FetchedAt:    now.Add(-domain.RateCacheTTL),
	}

	suite.True(entry.IsFresh(now))

	entry.FetchedAt = entry.FetchedAt.Add(-time.Nanosecond)
	suite.False(entry.IsFresh(now))
}

func (suite *RateCacheServiceTestSuite) TestGet_ExpiredEntryIsAMiss() {
	ctx := context.Background()
	entry := &domain.RateCacheEntry{
		FromCurrency: "IDR",
		Rates:        map[string]decimal.Decimal{"USD": decimal.New(65, -6)},
		FetchedAt:    time.Now().Add(-domain.RateCacheTTL - time.Second),
	}
	suite.mockRepo.On("FindRateEntry", ctx, "IDR").Return(entry, nil).Once()

	got, ok, err := suite.service.Get(ctx, "IDR")

	suite.Require().NoError(err)
	suite.False(ok)
	suite.Nil(got)
}

func (suite *RateCacheServiceTestSuite) TestGet_AbsentEntryIsAMissNotAnError() {
	ctx := context.Background()
	suite.mockRepo.On("FindRateEntry", ctx, "AED").Return(nil, apperrors.ErrNotFound).Once()

	got, ok, err := suite.service.Get(ctx, "AED")

	suite.Require().NoError(err)
	suite.False(ok)
	suite.Nil(got)
}

func (suite *RateCacheServiceTestSuite) TestGet_RepositoryFailureIsAnError() {
	ctx := context.Background()
	suite.mockRepo.On("FindRateEntry", ctx, "IDR").Return(nil, errors.New("connection refused")).Once()

	_, ok, err := suite.service.Get(ctx, "IDR")

	suite.Require().Error(err)
	suite.False(ok)
}

func (suite *RateCacheServiceTestSuite) TestPut_CreatesEntryOnFirstWrite() {
	ctx := context.Background()
	rate := decimal.RequireFromString("0.000065")
	suite.mockRepo.On("FindRateEntry", ctx, "IDR").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveRateEntry", ctx, mock.MatchedBy(func(entry domain.RateCacheEntry) bool {
		return entry.FromCurrency == "IDR" &&
			entry.Rates["USD"].Equal(rate) &&
			time.Since(entry.FetchedAt) < time.Minute
	})).Return(nil).Once()

	err := suite.service.Put(ctx, "IDR", "USD", rate)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateCacheServiceTestSuite) TestPut_MergePreservesSiblingTargetsAndRefreshesTimestamp() {
	ctx := context.Background()
	stale := time.Now().Add(-20 * time.Minute)
	existing := &domain.RateCacheEntry{
		FromCurrency: "IDR",
		Rates:        map[string]decimal.Decimal{"AED": decimal.RequireFromString("0.00024")},
		FetchedAt:    stale,
	}
	suite.mockRepo.On("FindRateEntry", ctx, "IDR").Return(existing, nil).Once()
	suite.mockRepo.On("SaveRateEntry", ctx, mock.MatchedBy(func(entry domain.RateCacheEntry) bool {
		// Sibling target kept, new target added, shared timestamp moved forward.
		return entry.Rates["AED"].Equal(decimal.RequireFromString("0.00024")) &&
			entry.Rates["USD"].Equal(decimal.RequireFromString("0.000065")) &&
			entry.FetchedAt.After(stale)
	})).Return(nil).Once()

	err := suite.service.Put(ctx, "IDR", "USD", decimal.RequireFromString("0.000065"))

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateCacheServiceTestSuite) TestPut_SaveFailurePropagates() {
	ctx := context.Background()
	suite.mockRepo.On("FindRateEntry", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveRateEntry", ctx, mock.Anything).Return(errors.New("disk full")).Once()

	err := suite.service.Put(ctx, "USD", "AED", decimal.RequireFromString("3.6725"))

	suite.Require().Error(err)
}

func TestRateCacheServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateCacheServiceTestSuite))
}
