package domain

// Currency represents a supported currency.
type Currency struct {
	CurrencyCode  string `json:"currencyCode"`  // Primary Key (e.g., "USD")
	Symbol        string `json:"symbol"`        // e.g., "$"
	Name          string `json:"name"`          // e.g., "US Dollar"
	DecimalPlaces int    `json:"decimalPlaces"` // Display precision; IDR uses 0
	AuditFields
}

// Supported currency codes. The set is closed: any stored or requested
// currency must belong to it, operations on anything else fail fast.
const (
	CurrencyIDR = "IDR"
	CurrencyAED = "AED"
	CurrencyUSD = "USD"
)

// DefaultCurrency is the preference assigned to newly registered users.
const DefaultCurrency = CurrencyIDR

// SupportedCurrencies is the closed catalog of currencies the application
// accepts, in display order.
var SupportedCurrencies = []Currency{
	{CurrencyCode: CurrencyIDR, Symbol: "Rp", Name: "Indonesian Rupiah", DecimalPlaces: 0},
	{CurrencyCode: CurrencyAED, Symbol: "د.إ", Name: "UAE Dirham", DecimalPlaces: 2},
	{CurrencyCode: CurrencyUSD, Symbol: "$", Name: "US Dollar", DecimalPlaces: 2},
}

// IsSupportedCurrency reports whether code belongs to the supported set.
func IsSupportedCurrency(code string) bool {
	_, ok := SupportedCurrency(code)
	return ok
}

// SupportedCurrency looks up a currency in the supported set by code.
func SupportedCurrency(code string) (Currency, bool) {
	for _, c := range SupportedCurrencies {
		if c.CurrencyCode == code {
			return c, true
		}
	}
	return Currency{}, false
}
