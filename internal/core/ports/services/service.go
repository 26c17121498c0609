package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Currency    CurrencySvcFacade
	RateCache   RateCacheSvc
	RateFetcher RateFetcher
	Conversion  ConversionSvcFacade
	Expense     ExpenseSvcFacade
	Income      IncomeSvcFacade
	Category    CategorySvcFacade
	Budget      BudgetSvcFacade
	Reporting   ReportingSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
