package services_test

import (
	"context"
	"testing"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	"github.com/finwise-app/finwise_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService (shared across the package's suites) ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ValidateSupported(code string) error {
	args := m.Called(code)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  *services.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestValidateSupported_AcceptsWholeSet() {
	for _, c := range domain.SupportedCurrencies {
		suite.NoError(suite.service.ValidateSupported(c.CurrencyCode))
	}
}

func (suite *CurrencyServiceTestSuite) TestValidateSupported_RejectsUnknownCode() {
	err := suite.service.ValidateSupported("EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.Contains(err.Error(), "EUR")

	// Validation is a pure membership check.
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestValidateSupported_IsCaseSensitive() {
	suite.ErrorIs(suite.service.ValidateSupported("idr"), apperrors.ErrUnsupportedCurrency)
	suite.ErrorIs(suite.service.ValidateSupported(""), apperrors.ErrUnsupportedCurrency)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()
	idr := domain.Currency{CurrencyCode: domain.CurrencyIDR, Symbol: "Rp", Name: "Indonesian Rupiah"}
	suite.mockRepo.On("FindCurrencyByCode", ctx, "IDR").Return(&idr, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "IDR")

	suite.Require().NoError(err)
	suite.Equal("IDR", currency.CurrencyCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_UnsupportedSkipsRepo() {
	currency, err := suite.service.GetCurrencyByCode(context.Background(), "EUR")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestDefaultCurrencyIsSupported() {
	suite.NoError(suite.service.ValidateSupported(domain.DefaultCurrency))
	suite.Equal("IDR", domain.DefaultCurrency)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
