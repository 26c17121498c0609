package services_test

import (
	"context"
	"testing"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/finwise-app/finwise_backend/internal/core/services"
	"github.com/finwise-app/finwise_backend/internal/dto"
	"github.com/finwise-app/finwise_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockCurrencySvc *MockCurrencyService
	service         *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockCurrencySvc)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "correct-horse"}
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.DefaultCurrency == domain.DefaultCurrency &&
			u.Provider == domain.ProviderLocal &&
			u.PasswordHash != "" &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(domain.DefaultCurrency, user.DefaultCurrency)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "correct-horse"}
	suite.mockUserRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingBySubject() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "sari@example.com", Provider: domain.ProviderGoogle}
	info := domain.GoogleUserInfo{Sub: "google-sub-1", Email: "sari@example.com", EmailVerified: true}
	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "google-sub-1").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_LinksLocalAccountByEmail() {
	ctx := context.Background()
	local := &domain.User{UserID: uuid.NewString(), Email: "sari@example.com", Provider: domain.ProviderLocal}
	info := domain.GoogleUserInfo{Sub: "google-sub-2", Email: "sari@example.com", EmailVerified: true, Name: "Sari"}
	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "google-sub-2").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "sari@example.com").Return(local, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == local.UserID &&
			u.Provider == domain.ProviderGoogle &&
			u.ProviderUserID == "google-sub-2"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(local.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesOnFirstSignIn() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{Sub: "google-sub-3", Email: "new@example.com", EmailVerified: true, Name: "New User"}
	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "google-sub-3").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == info.Email &&
			u.Provider == domain.ProviderGoogle &&
			u.ProviderUserID == info.Sub &&
			u.DefaultCurrency == domain.DefaultCurrency &&
			u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_RejectsUnverifiedEmail() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{Sub: "google-sub-4", Email: "spoof@example.com", EmailVerified: false}

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByProviderID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCommitDefaultCurrency_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockCurrencySvc.On("ValidateSupported", "USD").Return(nil).Once()
	suite.mockUserRepo.On("UpdateDefaultCurrency", ctx, userID, "USD").Return(nil).Once()

	err := suite.service.CommitDefaultCurrency(ctx, userID, "USD")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCommitDefaultCurrency_UnsupportedCurrency() {
	ctx := context.Background()
	suite.mockCurrencySvc.On("ValidateSupported", "EUR").Return(apperrors.ErrUnsupportedCurrency).Once()

	err := suite.service.CommitDefaultCurrency(ctx, uuid.NewString(), "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateDefaultCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
