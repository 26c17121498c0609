package ratesapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finwise-app/finwise_backend/internal/adapters/ratesapi"
	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateCacheSvc ---
type MockRateCache struct {
	mock.Mock
}

func (m *MockRateCache) Get(ctx context.Context, fromCurrency string) (*domain.RateCacheEntry, bool, error) {
	args := m.Called(ctx, fromCurrency)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.RateCacheEntry), args.Bool(1), args.Error(2)
}

func (m *MockRateCache) Put(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error {
	args := m.Called(ctx, fromCurrency, toCurrency, rate)
	return args.Error(0)
}

// --- Test Suite ---
type RatesAPIClientTestSuite struct {
	suite.Suite
	mockCache *MockRateCache
}

func (suite *RatesAPIClientTestSuite) SetupTest() {
	suite.mockCache = new(MockRateCache)
}

func (suite *RatesAPIClientTestSuite) newServer(handler http.HandlerFunc) (*httptest.Server, *ratesapi.Client) {
	server := httptest.NewServer(handler)
	suite.T().Cleanup(server.Close)
	return server, ratesapi.NewClient(server.URL, "test-key", suite.mockCache)
}

// --- Test Cases ---

func (suite *RatesAPIClientTestSuite) TestFetchRate_SuccessWritesThroughCache() {
	var requestedPath string
	_, client := suite.newServer(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"success","base_code":"IDR","target_code":"USD","conversion_rate":0.000065}`))
	})

	rate := decimal.RequireFromString("0.000065")
	suite.mockCache.On("Put", mock.Anything, "IDR", "USD", rate).Return(nil).Once()

	got, err := client.FetchRate(context.Background(), "IDR", "USD")

	suite.Require().NoError(err)
	suite.True(got.Equal(rate))
	suite.Equal("/test-key/pair/IDR/USD", requestedPath)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *RatesAPIClientTestSuite) TestFetchRate_ProviderBusinessError() {
	_, client := suite.newServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	})

	_, err := client.FetchRate(context.Background(), "IDR", "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrProvider)
	suite.Contains(err.Error(), "unsupported-code")
	suite.mockCache.AssertNotCalled(suite.T(), "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RatesAPIClientTestSuite) TestFetchRate_NonSuccessStatus() {
	_, client := suite.newServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.FetchRate(context.Background(), "IDR", "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrProvider)
}

func (suite *RatesAPIClientTestSuite) TestFetchRate_MissingConversionRate() {
	_, client := suite.newServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"success","base_code":"IDR","target_code":"USD"}`))
	})

	_, err := client.FetchRate(context.Background(), "IDR", "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidResponse)
	suite.mockCache.AssertNotCalled(suite.T(), "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RatesAPIClientTestSuite) TestFetchRate_MalformedBody() {
	_, client := suite.newServer(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.FetchRate(context.Background(), "IDR", "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidResponse)
}

func (suite *RatesAPIClientTestSuite) TestFetchRate_CacheWriteFailureStillReturnsRate() {
	_, client := suite.newServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"success","conversion_rate":3.6725}`))
	})

	suite.mockCache.On("Put", mock.Anything, "USD", "AED", mock.Anything).
		Return(errors.New("disk full")).Once()

	rate, err := client.FetchRate(context.Background(), "USD", "AED")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("3.6725")))
}

func TestRatesAPIClientTestSuite(t *testing.T) {
	suite.Run(t, new(RatesAPIClientTestSuite))
}
