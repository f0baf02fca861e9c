package enums

import "fmt"

// Currency represents the monetary denominations accepted by the calculation
// endpoint. Amounts are never converted between currencies; the code is
// validated and passed through.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencySAR Currency = "SAR"
	CurrencyAED Currency = "AED"
	CurrencyEGP Currency = "EGP"
	CurrencyKWD Currency = "KWD"
)

var validCurrencies = []Currency{
	CurrencyUSD,
	CurrencyEUR,
	CurrencySAR,
	CurrencyAED,
	CurrencyEGP,
	CurrencyKWD,
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
