package cli

import (
	"testing"

	"spendwise/internal/catalog"
)

func TestFormatMoney(t *testing.T) {
	usd := catalog.ResolveCurrency("USD")
	eur := catalog.ResolveCurrency("EUR")

	cases := []struct {
		amount float64
		cur    catalog.Currency
		want   string
	}{
		{0, usd, "$0"},
		{5, usd, "$5"},
		{1234.5, usd, "$1,234.5"},
		{1234567.89, usd, "$1,234,567.89"},
		{999, usd, "$999"},
		{1000, usd, "$1,000"},
		{0.005, usd, "$0.01"},
		{19.999, usd, "$20"},
		{-42.5, usd, "-$42.5"},
		{250, eur, "€250"},
	}

	for _, c := range cases {
		if got := FormatMoney(c.amount, c.cur); got != c.want {
			t.Errorf("FormatMoney(%v, %s) = %q, want %q", c.amount, c.cur.Code, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(66.666); got != "66.7%" {
		t.Fatalf("FormatPercent(66.666) = %q, want 66.7%%", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Fatalf("FormatPercent(0) = %q, want 0.0%%", got)
	}
}

func TestGroupThousands(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"999":      "999",
		"1000":     "1,000",
		"12345":    "12,345",
		"1234567":  "1,234,567",
		"10000000": "10,000,000",
	}
	for in, want := range cases {
		if got := groupThousands(in); got != want {
			t.Errorf("groupThousands(%q) = %q, want %q", in, got, want)
		}
	}
}
