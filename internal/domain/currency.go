package domain

import (
	"strings"
	"time"
)

// BaseCurrency is the currency every gateway price is quoted in. The store
// ships from Mauritius, so rupees are the fixed conversion base.
const BaseCurrency = "MUR"

// currencySymbols doubles as the supported-currency set.
var currencySymbols = map[string]string{
	"MUR": "Rs",
	"USD": "$",
	"AUD": "A$",
	"CAD": "C$",
	"EUR": "€",
	"GBP": "£",
}

// FallbackRates is the hard-coded table used when no fresh rates are
// available. Approximate MUR rates; the base rate is always exactly 1.
var FallbackRates = RateTable{
	"MUR": 1,
	"USD": 0.0215,
	"AUD": 0.0327,
	"CAD": 0.0292,
	"EUR": 0.0198,
	"GBP": 0.0170,
}

// RateTable maps a currency code to its multiplicative rate relative to
// BaseCurrency. Tables are replaced wholesale, never merged.
type RateTable map[string]float64

// Clone returns an independent copy so a published table is never mutated.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for code, rate := range t {
		out[code] = rate
	}
	return out
}

// RateSnapshot is the persisted form of the cache: the full table plus the
// moment it was fetched.
type RateSnapshot struct {
	Rates     RateTable `json:"rates"`
	FetchedAt time.Time `json:"timestamp"`
}

// SupportedCurrency reports whether code is one the storefront can display.
func SupportedCurrency(code string) bool {
	_, ok := currencySymbols[strings.ToUpper(code)]
	return ok
}

// CurrencySymbol returns the display symbol for a supported currency code.
func CurrencySymbol(code string) string {
	return currencySymbols[strings.ToUpper(code)]
}

// SupportedCurrencies lists the supported codes; the order is not significant.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(currencySymbols))
	for code := range currencySymbols {
		codes = append(codes, code)
	}
	return codes
}
