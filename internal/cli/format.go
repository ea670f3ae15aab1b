// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"spendwise/internal/catalog"
)

// FormatMoney renders an amount with the currency's symbol, thousands
// grouping, and at most two fraction digits. Integral amounts carry no
// fraction. No conversion is performed; the symbol is a label.
// e.g., 1234567.5 with USD -> "$1,234,567.5"
func FormatMoney(amount float64, cur catalog.Currency) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	// Two-decimal rounding first so grouping sees the displayed value.
	amount = math.Round(amount*100) / 100

	s := strconv.FormatFloat(amount, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if hasFrac && len(fracPart) > 2 {
		fracPart = fracPart[:2]
	}

	out := sign + cur.Symbol + groupThousands(intPart)
	if hasFrac {
		out += "." + fracPart
	}
	return out
}

// FormatPercent renders a 0-100 percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatTimestamp renders an epoch-milliseconds value in local time.
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Local().Format("Jan 2 2006, 15:04")
}

// groupThousands adds comma separators to a decimal digit string.
// e.g., "1234567" -> "1,234,567"
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
