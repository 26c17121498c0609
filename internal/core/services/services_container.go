package services

import (
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	portssvc "github.com/finwise-app/finwise_backend/internal/core/ports/services"
	"github.com/finwise-app/finwise_backend/internal/platform/config"
)

// NewServiceContainer wires the application services over the repository
// provider. The rate cache service and rate fetcher are built by the caller
// because the fetcher is an outbound adapter that itself depends on the cache.
func NewServiceContainer(
	repos *portsrepo.RepositoryProvider,
	cfg *config.Config,
	rateCache portssvc.RateCacheSvc,
	rateFetcher portssvc.RateFetcher,
) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(repos.CurrencyRepo)
	userSvc := NewUserService(repos.UserRepo, currencySvc)

	conversionSvc := NewConversionService(
		currencySvc,
		rateCache,
		rateFetcher,
		repos.ExpenseRepo,
		repos.IncomeRepo,
	)

	return &portssvc.ServiceContainer{
		User:        userSvc,
		Currency:    currencySvc,
		RateCache:   rateCache,
		RateFetcher: rateFetcher,
		Conversion:  conversionSvc,
		Expense:     NewExpenseService(repos.ExpenseRepo, currencySvc),
		Income:      NewIncomeService(repos.IncomeRepo, currencySvc),
		Category:    NewCategoryService(repos.CategoryRepo),
		Budget:      NewBudgetService(repos.BudgetRepo, repos.ReportingRepo, repos.UserRepo),
		Reporting:   NewReportingService(repos.ReportingRepo, repos.UserRepo),
		Token:       NewTokenService(cfg, userSvc),
		GoogleOAuth: NewGoogleOAuthService(cfg),
	}
}
