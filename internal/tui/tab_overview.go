package tui

import (
	"fmt"
	"strconv"
	"strings"

	"spendwise/internal/catalog"
	"spendwise/internal/cli"
	"spendwise/internal/ledger"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// overviewState holds the inline budget editor.
type overviewState struct {
	editing bool
	input   textinput.Model
}

func newBudgetInput(current float64) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "monthly budget"
	ti.CharLimit = 12
	ti.Width = 16
	if current > 0 {
		ti.SetValue(strconv.FormatFloat(current, 'f', -1, 64))
	}
	return ti
}

func (a App) updateOverviewTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "b" {
		a.overview.editing = true
		a.overview.input = newBudgetInput(a.data.MonthlyBudget)
		a.overview.input.Focus()
		return a, textinput.Blink
	}
	return a, nil
}

func (a App) updateBudgetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.overview.editing = false
		return a, nil
	case "enter":
		a.overview.editing = false
		amount, err := strconv.ParseFloat(strings.TrimSpace(a.overview.input.Value()), 64)
		if err != nil {
			return a, nil // forgiving: bad input leaves the budget alone
		}
		a.data = ledger.SetBudget(a.data, amount)
		a.persist()
		a.recompute()
		return a, nil
	}

	var cmd tea.Cmd
	a.overview.input, cmd = a.overview.input.Update(msg)
	return a, cmd
}

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	m := a.metrics
	cur := catalog.ResolveCurrency(a.data.Currency)
	var b strings.Builder

	// Row 1: metric cards
	remainingColor := t.Green
	remainingNote := "left this month"
	if m.IsOverBudget {
		remainingColor = t.Red
		remainingNote = "over budget"
	}
	usageColor := t.TextPrimary
	if m.PercentageUsed > 100 {
		usageColor = t.Red
	} else if m.PercentageUsed > 80 {
		usageColor = t.Orange
	}

	widths := components.LayoutRow(cw, 4)
	cards := []string{
		components.MetricCard("Budget", cli.FormatMoney(a.data.MonthlyBudget, cur), "press b to edit", t.TextPrimary, widths[0]),
		components.MetricCard("Spent", cli.FormatMoney(m.TotalExpenses, cur), fmt.Sprintf("%d expenses", len(a.data.Expenses)), t.TextPrimary, widths[1]),
		components.MetricCard("Remaining", cli.FormatMoney(abs(m.Remaining), cur), remainingNote, remainingColor, widths[2]),
		components.MetricCard("Used", cli.FormatPercent(m.PercentageUsed), "", usageColor, widths[3]),
	}
	b.WriteString(components.CardRow(cards))
	b.WriteString("\n")

	// Inline budget editor
	if a.overview.editing {
		b.WriteString(components.ContentCard("Set monthly budget",
			cur.Symbol+" "+a.overview.input.View()+"\n"+
				lipgloss.NewStyle().Foreground(t.TextDim).Render("enter to save, esc to cancel"),
			cw))
		b.WriteString("\n")
	}

	// Row 2: budget utilization
	if a.data.MonthlyBudget > 0 {
		barW := components.CardInnerWidth(cw) - 18
		if barW < 10 {
			barW = 10
		}
		b.WriteString(components.ContentCard("Budget",
			components.BudgetBar("Used", m.PercentageUsed, 6, barW),
			cw))
		b.WriteString("\n")
	}

	// Over-budget banner
	if m.IsOverBudget {
		warn := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Red).
			Foreground(t.Red).
			Width(cw-2).
			Padding(0, 1)
		b.WriteString(warn.Render(fmt.Sprintf("Over budget! You've exceeded your monthly budget by %s.",
			cli.FormatMoney(-m.Remaining, cur))))
		b.WriteString("\n")
	}

	// Row 3: top category
	if m.TopCategory != nil {
		body := fmt.Sprintf("%s  %s (%s of spend)",
			lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(m.TopCategory.Name),
			cli.FormatMoney(m.TopCategory.Value, cur),
			cli.FormatPercent(m.TopCategory.Percentage))
		b.WriteString(components.ContentCard("Top Spending Category", body, cw))
		b.WriteString("\n")
	}

	if len(a.data.Expenses) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString("\n")
		b.WriteString(hint.Render("  No expenses yet. Press a to add your first one."))
		b.WriteString("\n")
	}

	return b.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
