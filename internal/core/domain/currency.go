package domain

import "strings"

// Currency is an ISO-4217 code the ledger holds wallets in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyNGN Currency = "NGN"
	CurrencyGHS Currency = "GHS"
	CurrencyKES Currency = "KES"
)

// SupportedCurrencies is the closed set of wallet currencies.
var SupportedCurrencies = []Currency{CurrencyUSD, CurrencyNGN, CurrencyGHS, CurrencyKES}

// DefaultCurrencies are provisioned for every new user.
var DefaultCurrencies = []Currency{CurrencyUSD, CurrencyNGN}

// IsSupported reports whether c is one of SupportedCurrencies.
func (c Currency) IsSupported() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency normalises s and reports whether it is supported.
func ParseCurrency(s string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsSupported()
}
