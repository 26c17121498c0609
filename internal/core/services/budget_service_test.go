package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/finwise-app/finwise_backend/internal/core/services"
	"github.com/finwise-app/finwise_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsByMonth(ctx context.Context, userID string, month string) ([]domain.Budget, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetMonthlySummary(ctx context.Context, userID string, month string, currencyCode string) (*domain.MonthlySummary, error) {
	args := m.Called(ctx, userID, month, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySummary), args.Error(1)
}

func (m *MockReportingRepository) SumIncomeForMonth(ctx context.Context, userID string, month string, currencyCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, month, currencyCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumExpensesByCategoryForMonth(ctx context.Context, userID string, month string, currencyCode string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, userID, month, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateDefaultCurrency(ctx context.Context, userID string, currencyCode string) error {
	args := m.Called(ctx, userID, currencyCode)
	return args.Error(0)
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo    *MockBudgetRepository
	mockReportingRepo *MockReportingRepository
	mockUserRepo      *MockUserRepository
	service           *services.BudgetService
	userID            string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockReportingRepo, suite.mockUserRepo)
	suite.userID = uuid.NewString()
}

func (suite *BudgetServiceTestSuite) budget(categoryID, month, targetPercent string) domain.Budget {
	return domain.Budget{
		BudgetID:      uuid.NewString(),
		UserID:        suite.userID,
		CategoryID:    categoryID,
		TargetPercent: decimal.RequireFromString(targetPercent),
		Month:         month,
		AuditFields:   domain.AuditFields{CreatedAt: time.Now(), LastUpdatedAt: time.Now()},
	}
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID:    uuid.NewString(),
		TargetPercent: decimal.RequireFromString("30"),
		Month:         "2026-09",
	}
	suite.mockBudgetRepo.On("ListBudgetsByMonth", ctx, suite.userID, "2026-09").
		Return([]domain.Budget{suite.budget(uuid.NewString(), "2026-09", "50")}, nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(budget.BudgetID)
	suite.Equal(suite.userID, budget.UserID)
	suite.True(budget.TargetPercent.Equal(decimal.RequireFromString("30")))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_RejectsZeroAndOverHundredTargets() {
	ctx := context.Background()

	for _, target := range []string{"0", "-5", "100.01"} {
		req := dto.CreateBudgetRequest{
			CategoryID:    uuid.NewString(),
			TargetPercent: decimal.RequireFromString(target),
			Month:         "2026-09",
		}
		budget, err := suite.service.CreateBudget(ctx, suite.userID, req)
		suite.Require().Error(err, "target %s", target)
		suite.Nil(budget)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_RejectsMonthTotalOverHundred() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID:    uuid.NewString(),
		TargetPercent: decimal.RequireFromString("40"),
		Month:         "2026-09",
	}
	suite.mockBudgetRepo.On("ListBudgetsByMonth", ctx, suite.userID, "2026-09").
		Return([]domain.Budget{
			suite.budget(uuid.NewString(), "2026-09", "50"),
			suite.budget(uuid.NewString(), "2026-09", "20"),
		}, nil).Once()

	budget, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "100")
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_ExcludesItselfFromMonthTotal() {
	ctx := context.Background()
	existing := suite.budget(uuid.NewString(), "2026-09", "60")
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, existing.BudgetID).Return(&existing, nil).Once()
	// The month already totals 100 including this budget; raising its own
	// target to 70 still fits because its old 60 is excluded.
	suite.mockBudgetRepo.On("ListBudgetsByMonth", ctx, suite.userID, "2026-09").
		Return([]domain.Budget{existing, suite.budget(uuid.NewString(), "2026-09", "30")}, nil).Once()
	suite.mockBudgetRepo.On("UpdateBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	target := decimal.RequireFromString("70")
	updated, err := suite.service.UpdateBudget(ctx, suite.userID, existing.BudgetID, dto.UpdateBudgetRequest{TargetPercent: &target})

	suite.Require().NoError(err)
	suite.True(updated.TargetPercent.Equal(target))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_ForbiddenForOtherUsers() {
	ctx := context.Background()
	other := suite.budget(uuid.NewString(), "2026-09", "10")
	other.UserID = uuid.NewString()
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, other.BudgetID).Return(&other, nil).Once()

	target := decimal.RequireFromString("20")
	updated, err := suite.service.UpdateBudget(ctx, suite.userID, other.BudgetID, dto.UpdateBudgetRequest{TargetPercent: &target})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BudgetServiceTestSuite) TestGetBudgetStatus_ComputesTargetsAndUtilization() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	user := &domain.User{UserID: suite.userID, DefaultCurrency: "IDR"}
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(user, nil).Once()
	suite.mockBudgetRepo.On("ListBudgetsByMonth", ctx, suite.userID, "2026-09").
		Return([]domain.Budget{suite.budget(categoryID, "2026-09", "30")}, nil).Once()
	suite.mockReportingRepo.On("SumIncomeForMonth", ctx, suite.userID, "2026-09", "IDR").
		Return(decimal.RequireFromString("10000000"), nil).Once()
	suite.mockReportingRepo.On("SumExpensesByCategoryForMonth", ctx, suite.userID, "2026-09", "IDR").
		Return(map[string]decimal.Decimal{categoryID: decimal.RequireFromString("1500000")}, nil).Once()

	statuses, err := suite.service.GetBudgetStatus(ctx, suite.userID, "2026-09")

	suite.Require().NoError(err)
	suite.Require().Len(statuses, 1)
	// 30% of 10,000,000 income = 3,000,000 target; 1,500,000 spent = 50%.
	suite.True(statuses[0].TargetAmount.Equal(decimal.RequireFromString("3000000")))
	suite.True(statuses[0].ActualSpend.Equal(decimal.RequireFromString("1500000")))
	suite.True(statuses[0].Utilization.Equal(decimal.RequireFromString("50")))
}

func (suite *BudgetServiceTestSuite) TestGetBudgetStatus_ZeroIncomeMeansZeroUtilization() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	user := &domain.User{UserID: suite.userID, DefaultCurrency: "IDR"}
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(user, nil).Once()
	suite.mockBudgetRepo.On("ListBudgetsByMonth", ctx, suite.userID, "2026-09").
		Return([]domain.Budget{suite.budget(categoryID, "2026-09", "30")}, nil).Once()
	suite.mockReportingRepo.On("SumIncomeForMonth", ctx, suite.userID, "2026-09", "IDR").
		Return(decimal.Zero, nil).Once()
	suite.mockReportingRepo.On("SumExpensesByCategoryForMonth", ctx, suite.userID, "2026-09", "IDR").
		Return(map[string]decimal.Decimal{categoryID: decimal.RequireFromString("500000")}, nil).Once()

	statuses, err := suite.service.GetBudgetStatus(ctx, suite.userID, "2026-09")

	suite.Require().NoError(err)
	suite.Require().Len(statuses, 1)
	suite.True(statuses[0].TargetAmount.IsZero())
	suite.True(statuses[0].Utilization.IsZero())
}

func (suite *BudgetServiceTestSuite) TestGetBudgetStatus_NoBudgetsSkipsAggregation() {
	ctx := context.Background()
	user := &domain.User{UserID: suite.userID, DefaultCurrency: "IDR"}
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(user, nil).Once()
	suite.mockBudgetRepo.On("ListBudgetsByMonth", ctx, suite.userID, "2026-09").
		Return([]domain.Budget{}, nil).Once()

	statuses, err := suite.service.GetBudgetStatus(ctx, suite.userID, "2026-09")

	suite.Require().NoError(err)
	suite.Empty(statuses)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "SumIncomeForMonth", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
