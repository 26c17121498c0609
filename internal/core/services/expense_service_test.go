package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	"github.com/finwise-app/finwise_backend/internal/core/services"
	"github.com/finwise-app/finwise_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, userID string, filter portsrepo.ListRecordsFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) Kind() domain.RecordKind {
	return domain.RecordKindExpense
}

func (m *MockExpenseRepository) ListByUserAndCurrency(ctx context.Context, userID string, currencyCode string) ([]domain.MonetaryRecord, error) {
	args := m.Called(ctx, userID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonetaryRecord), args.Error(1)
}

func (m *MockExpenseRepository) BulkUpsert(ctx context.Context, records []domain.MonetaryRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockExpenseRepository
	mockCurrencySvc *MockCurrencyService
	service         *services.ExpenseService
	userID          string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewExpenseService(suite.mockRepo, suite.mockCurrencySvc)
	suite.userID = uuid.NewString()
}

func (suite *ExpenseServiceTestSuite) expense(amount string) *domain.Expense {
	return &domain.Expense{
		MonetaryRecord: domain.MonetaryRecord{
			RecordID:   uuid.NewString(),
			UserID:     suite.userID,
			Amount:     decimal.RequireFromString(amount),
			Currency:   "IDR",
			CategoryID: uuid.NewString(),
			Date:       time.Now(),
			AuditFields: domain.AuditFields{
				CreatedAt:     time.Now(),
				LastUpdatedAt: time.Now(),
			},
		},
	}
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:      decimal.RequireFromString("50000"),
		Currency:    "IDR",
		Description: "Groceries",
		CategoryID:  uuid.NewString(),
		Date:        time.Now(),
	}
	suite.mockCurrencySvc.On("ValidateSupported", "IDR").Return(nil).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(expense.RecordID)
	suite.Equal(suite.userID, expense.UserID)
	suite.Equal(suite.userID, expense.CreatedBy)
	suite.True(expense.Amount.Equal(req.Amount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_UnsupportedCurrency() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:     decimal.RequireFromString("10"),
		Currency:   "EUR",
		CategoryID: uuid.NewString(),
		Date:       time.Now(),
	}
	suite.mockCurrencySvc.On("ValidateSupported", "EUR").Return(apperrors.ErrUnsupportedCurrency).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NonPositiveAmount() {
	ctx := context.Background()
	suite.mockCurrencySvc.On("ValidateSupported", "IDR").Return(nil)

	for _, amount := range []string{"0", "-100"} {
		req := dto.CreateExpenseRequest{
			Amount:     decimal.RequireFromString(amount),
			Currency:   "IDR",
			CategoryID: uuid.NewString(),
			Date:       time.Now(),
		}
		expense, err := suite.service.CreateExpense(ctx, suite.userID, req)
		suite.Require().Error(err, "amount %s", amount)
		suite.Nil(expense)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseByID_ForbiddenForOtherUsers() {
	ctx := context.Background()
	other := suite.expense("100")
	other.UserID = uuid.NewString()
	suite.mockRepo.On("FindExpenseByID", ctx, other.RecordID).Return(other, nil).Once()

	expense, err := suite.service.GetExpenseByID(ctx, suite.userID, other.RecordID)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_FullPageYieldsNextToken() {
	ctx := context.Background()
	page := []domain.Expense{*suite.expense("100"), *suite.expense("200")}
	suite.mockRepo.On("ListExpenses", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.ListRecordsFilter) bool {
		return f.Limit == 2
	})).Return(page, nil).Once()

	expenses, nextToken, err := suite.service.ListExpenses(ctx, suite.userID, dto.ListExpensesRequest{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(expenses, 2)
	suite.NotEmpty(nextToken)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_ShortPageYieldsNoToken() {
	ctx := context.Background()
	page := []domain.Expense{*suite.expense("100")}
	suite.mockRepo.On("ListExpenses", ctx, suite.userID, mock.Anything).Return(page, nil).Once()

	expenses, nextToken, err := suite.service.ListExpenses(ctx, suite.userID, dto.ListExpensesRequest{Limit: 50})

	suite.Require().NoError(err)
	suite.Len(expenses, 1)
	suite.Empty(nextToken)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_PartialEdit() {
	ctx := context.Background()
	existing := suite.expense("100")
	suite.mockRepo.On("FindExpenseByID", ctx, existing.RecordID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Amount.Equal(decimal.RequireFromString("250.50")) && e.Description == existing.Description
	})).Return(nil).Once()

	amount := decimal.RequireFromString("250.50")
	updated, err := suite.service.UpdateExpense(ctx, suite.userID, existing.RecordID, dto.UpdateExpenseRequest{Amount: &amount})

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(amount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NotFound() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	suite.mockRepo.On("FindExpenseByID", ctx, expenseID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteExpense(ctx, suite.userID, expenseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
