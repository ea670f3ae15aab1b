package components

import (
	"fmt"

	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForUsage returns green/yellow/orange/red for a 0-100 budget
// usage percentage.
func ColorForUsage(pct float64) string {
	t := theme.Active
	switch {
	case pct > 100:
		return string(t.Red)
	case pct > 80:
		return string(t.Orange)
	case pct > 50:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// BudgetBar renders a labeled budget-utilization bar. pct is 0-100 and
// may exceed 100; the bar clamps while the printed figure does not.
func BudgetBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	frac := pct / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForUsage(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForUsage(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(frac) + " " +
		pctStyle.Render(fmt.Sprintf("%.1f%%", pct))
}
