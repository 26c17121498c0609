package services

import (
	"context"
	"fmt"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	portssvc "github.com/finwise-app/finwise_backend/internal/core/ports/services"
)

// CurrencyService provides read access to the closed currency catalog.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// ValidateSupported returns apperrors.ErrUnsupportedCurrency unless the code
// belongs to the supported set. No I/O: the set is closed at compile time.
func (s *CurrencyService) ValidateSupported(code string) error {
	if !domain.IsSupportedCurrency(code) {
		return fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, code)
	}
	return nil
}

// GetCurrencyByCode retrieves a currency from the catalog.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	if err := s.ValidateSupported(currencyCode); err != nil {
		return nil, err
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies in the catalog.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
