// Package catalog holds the static currency registry and per-mode
// category lists.
package catalog

// Currency describes one display currency. Amounts are never converted
// between currencies; the symbol is a display label only.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// Currencies lists every supported currency in display order.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
}

// ResolveCurrency looks up a currency by code. Unknown codes resolve to
// USD; a stale code in stored data degrades at display time without
// ever being an error.
func ResolveCurrency(code string) Currency {
	for _, c := range Currencies {
		if c.Code == code {
			return c
		}
	}
	return Currencies[0]
}
