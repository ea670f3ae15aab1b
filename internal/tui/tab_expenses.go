package tui

import (
	"fmt"
	"strings"

	"spendwise/internal/catalog"
	"spendwise/internal/cli"
	"spendwise/internal/ledger"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateExpensesTab(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.expCursor < len(a.recent)-1 {
			a.expCursor++
		}
	case "k", "up":
		if a.expCursor > 0 {
			a.expCursor--
		}
	case "g":
		a.expCursor = 0
	case "G":
		if len(a.recent) > 0 {
			a.expCursor = len(a.recent) - 1
		}
	case "x":
		if a.expCursor < len(a.recent) {
			a.data = ledger.Remove(a.data, a.recent[a.expCursor].ID)
			a.persist()
			a.recompute()
		}
	}
	return a, nil
}

func (a App) renderExpensesTab(cw int) string {
	t := theme.Active
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.recent) == 0 {
		return hintStyle.Render("  No expenses yet. Add one on the Add tab.") + "\n"
	}

	cur := catalog.ResolveCurrency(a.data.Currency)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)

	inner := components.CardInnerWidth(cw)
	var list strings.Builder
	for i, e := range a.recent {
		line := fmt.Sprintf(" %-22s %-24s %12s ",
			cli.FormatTimestamp(e.Timestamp),
			truncateLabel(e.Category, 24),
			cli.FormatMoney(e.Amount, cur))
		if lipgloss.Width(line) > inner {
			line = line[:inner]
		}
		if i == a.expCursor {
			list.WriteString(selStyle.Render(line))
		} else {
			list.WriteString(rowStyle.Render(line))
		}
		list.WriteString("\n")
	}
	list.WriteString("\n")
	list.WriteString(hintStyle.Render("j/k move · g/G jump · x delete"))

	title := fmt.Sprintf("Expenses (%d, most recent first)", len(a.recent))
	return components.ContentCard(title, list.String(), cw) + "\n"
}

func truncateLabel(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
