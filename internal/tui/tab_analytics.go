package tui

import (
	"fmt"
	"strings"

	"spendwise/internal/catalog"
	"spendwise/internal/cli"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateAnalyticsTab(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter":
		a.showAnalytics = !a.showAnalytics
	case "c":
		if a.chart == chartPie {
			a.chart = chartBar
		} else {
			a.chart = chartPie
		}
	}
	return a, nil
}

func (a App) renderAnalyticsTab(cw int) string {
	t := theme.Active
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Collapsed by default: every launch starts with the summary hidden.
	if !a.showAnalytics {
		return hintStyle.Render("  Analytics hidden. Press enter to expand.") + "\n"
	}

	if len(a.breakdown) == 0 {
		return hintStyle.Render("  Nothing to chart yet. Add an expense first.") + "\n"
	}

	cur := catalog.ResolveCurrency(a.data.Currency)
	inner := components.CardInnerWidth(cw)

	names := make([]string, len(a.breakdown))
	values := make([]float64, len(a.breakdown))
	pcts := make([]float64, len(a.breakdown))
	for i, cs := range a.breakdown {
		names[i] = cs.Name
		values[i] = cs.Value
		pcts[i] = cs.Percentage
	}

	var body string
	var title string
	if a.chart == chartPie {
		title = "Spending by Category (pie)"
		body = components.PieLegend(names, values, pcts, inner)
	} else {
		title = "Spending by Category (bar)"
		body = components.BarChart(values, names, inner, 10)
	}

	var b strings.Builder
	b.WriteString(components.ContentCard(title, body, cw))
	b.WriteString("\n")

	var sum strings.Builder
	sum.WriteString(fmt.Sprintf("Total spent: %s across %d categories",
		cli.FormatMoney(a.metrics.TotalExpenses, cur), len(a.breakdown)))
	if top := a.metrics.TopCategory; top != nil {
		sum.WriteString(fmt.Sprintf("\nTop: %s at %s (%s of spending)",
			top.Name, cli.FormatMoney(top.Value, cur), cli.FormatPercent(top.Percentage)))
	}
	b.WriteString(components.ContentCard("Summary", sum.String(), cw))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("  enter collapse · c toggle chart type"))
	b.WriteString("\n")
	return b.String()
}
