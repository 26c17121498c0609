package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo      UserRepositoryFacade
	CurrencyRepo  CurrencyRepositoryFacade
	RateCacheRepo RateCacheRepository
	ExpenseRepo   ExpenseRepositoryFacade
	IncomeRepo    IncomeRepositoryFacade
	CategoryRepo  CategoryRepositoryFacade
	BudgetRepo    BudgetRepositoryFacade
	ReportingRepo ReportingRepository
}
