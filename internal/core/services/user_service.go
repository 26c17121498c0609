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
	"github.com/finwise-app/finwise_backend/internal/dto"
	"github.com/finwise-app/finwise_backend/internal/utils"
	"github.com/google/uuid"
)

// UserService provides account management.
type UserService struct {
	userRepo    portsrepo.UserRepositoryFacade
	currencySvc portssvc.CurrencyReaderSvc
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc) *UserService {
	return &UserService{userRepo: userRepo, currencySvc: currencySvc}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// GetUserByID retrieves a user by their unique ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByEmail retrieves a user by their email address.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

// RegisterUser creates a local-password account. The account starts with the
// application default currency.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:          uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    hash,
		DefaultCurrency: domain.DefaultCurrency,
		Provider:        domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to register user in service: %w", err)
	}
	return &user, nil
}

// FindOrCreateGoogleUser resolves a Google sign-in to a user account. First
// sign-ins create the account; a matching local account (same email) is
// linked to the Google subject instead.
func (s *UserService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if !info.EmailVerified {
		return nil, fmt.Errorf("%w: google account email not verified", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByProviderID(ctx, domain.ProviderGoogle, info.Sub)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	// No account for this subject yet; link by email when one exists.
	existing, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		existing.Provider = domain.ProviderGoogle
		existing.ProviderUserID = info.Sub
		existing.LastUpdatedAt = time.Now()
		existing.LastUpdatedBy = existing.UserID
		if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
			return nil, fmt.Errorf("failed to link google account: %w", err)
		}
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now()
	created := domain.User{
		UserID:          uuid.NewString(),
		Name:            info.Name,
		Email:           info.Email,
		DefaultCurrency: domain.DefaultCurrency,
		Provider:        domain.ProviderGoogle,
		ProviderUserID:  info.Sub,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	created.CreatedBy = created.UserID
	created.LastUpdatedBy = created.UserID

	if err := s.userRepo.SaveUser(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create google user in service: %w", err)
	}
	return &created, nil
}

// UpdateUser applies profile edits.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user in service: %w", err)
	}
	return user, nil
}

// CommitDefaultCurrency persists the user's preferred currency. The currency
// preference is only committed after the conversion engine has re-priced the
// user's records, so a failed conversion leaves the preference untouched.
func (s *UserService) CommitDefaultCurrency(ctx context.Context, userID string, currencyCode string) error {
	if err := s.currencySvc.ValidateSupported(currencyCode); err != nil {
		return err
	}
	if err := s.userRepo.UpdateDefaultCurrency(ctx, userID, currencyCode); err != nil {
		return fmt.Errorf("failed to commit default currency in service: %w", err)
	}
	return nil
}
