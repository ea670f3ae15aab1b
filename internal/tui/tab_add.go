package tui

import (
	"fmt"
	"strconv"
	"strings"

	"spendwise/internal/catalog"
	"spendwise/internal/cli"
	"spendwise/internal/ledger"
	"spendwise/internal/model"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type entryFocus int

const (
	focusCategory entryFocus = iota
	focusCustom
	focusAmount
)

// entryState stages a batch of expense entries before one atomic
// submit, mirroring the multi-row entry form of the dashboard.
type entryState struct {
	categories []string
	catIdx     int
	focus      entryFocus
	active     bool // a row is being edited
	custom     textinput.Model
	amount     textinput.Model
	staged     []ledger.Entry
	submitted  int // entries committed by the last submit, for feedback
}

// newEntryState builds a fresh form for the given mode. Switching
// modes discards any staged rows.
func newEntryState(mode model.Mode) entryState {
	custom := textinput.New()
	custom.Placeholder = "custom category"
	custom.CharLimit = 40
	custom.Width = 24

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12
	amount.Width = 12

	return entryState{
		categories: catalog.CategoriesFor(mode),
		active:     true,
		custom:     custom,
		amount:     amount,
	}
}

// typing reports whether a text input currently owns the keyboard.
func (e entryState) typing() bool {
	return e.active && (e.focus == focusCustom || e.focus == focusAmount)
}

// stageCurrent turns the edited row into a staged entry and resets the
// row. Validation happens at submit; a bad amount simply stages an
// entry the ledger will drop.
func (e *entryState) stageCurrent() {
	amount, _ := strconv.ParseFloat(strings.TrimSpace(e.amount.Value()), 64)
	e.staged = append(e.staged, ledger.Entry{
		Category:    e.categories[e.catIdx],
		CustomLabel: e.custom.Value(),
		Amount:      amount,
	})
	e.resetRow()
	e.active = false
}

func (e *entryState) resetRow() {
	e.catIdx = 0
	e.focus = focusCategory
	e.custom.SetValue("")
	e.custom.Blur()
	e.amount.SetValue("")
	e.amount.Blur()
}

func (a App) updateAddTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.entry.active {
		// Category selection
		switch key {
		case "j", "down":
			if a.entry.catIdx < len(a.entry.categories)-1 {
				a.entry.catIdx++
			}
		case "k", "up":
			if a.entry.catIdx > 0 {
				a.entry.catIdx--
			}
		case "esc":
			a.entry.resetRow()
			a.entry.active = false
		case "enter":
			if a.entry.categories[a.entry.catIdx] == catalog.OtherCategory {
				a.entry.focus = focusCustom
				a.entry.custom.Focus()
				return a, textinput.Blink
			}
			a.entry.focus = focusAmount
			a.entry.amount.Focus()
			return a, textinput.Blink
		}
		return a, nil
	}

	// Staged list
	switch key {
	case "enter":
		if len(a.entry.staged) == 0 {
			return a, nil
		}
		before := len(a.data.Expenses)
		a.data = ledger.Submit(a.data, a.entry.staged)
		a.entry.submitted = len(a.data.Expenses) - before
		a.entry.staged = nil
		a.persist()
		a.recompute()
	case "a":
		a.entry.active = true
		a.entry.submitted = 0
	case "u":
		if n := len(a.entry.staged); n > 0 {
			a.entry.staged = a.entry.staged[:n-1]
		}
	}
	return a, nil
}

func (a App) updateEntryInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.entry.resetRow()
		return a, nil
	case "enter":
		if a.entry.focus == focusCustom {
			if strings.TrimSpace(a.entry.custom.Value()) == "" {
				return a, nil // a label is required before moving on
			}
			a.entry.focus = focusAmount
			a.entry.custom.Blur()
			a.entry.amount.Focus()
			return a, textinput.Blink
		}
		a.entry.stageCurrent()
		return a, nil
	}

	var cmd tea.Cmd
	if a.entry.focus == focusCustom {
		a.entry.custom, cmd = a.entry.custom.Update(msg)
	} else {
		a.entry.amount, cmd = a.entry.amount.Update(msg)
	}
	return a, cmd
}

func (a App) renderAddTab(cw int) string {
	t := theme.Active
	cur := catalog.ResolveCurrency(a.data.Currency)
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	if a.entry.active {
		var form strings.Builder
		form.WriteString(labelStyle.Render(fmt.Sprintf("Category (%s mode)", a.data.Mode)))
		form.WriteString("\n")
		for i, cat := range a.entry.categories {
			if i == a.entry.catIdx {
				form.WriteString(selStyle.Render("> " + cat))
			} else {
				form.WriteString(labelStyle.Render("  " + cat))
			}
			form.WriteString("\n")
		}

		if a.entry.focus == focusCustom {
			form.WriteString("\n")
			form.WriteString(labelStyle.Render("Custom category: "))
			form.WriteString(a.entry.custom.View())
		}
		if a.entry.focus == focusAmount {
			form.WriteString("\n")
			form.WriteString(labelStyle.Render("Amount: " + cur.Symbol + " "))
			form.WriteString(a.entry.amount.View())
		}

		form.WriteString("\n\n")
		switch a.entry.focus {
		case focusCategory:
			form.WriteString(hintStyle.Render("j/k select · enter confirm · esc cancel"))
		default:
			form.WriteString(hintStyle.Render("enter confirm · esc cancel"))
		}

		b.WriteString(components.ContentCard("New Expense", form.String(), cw))
		b.WriteString("\n")
	}

	// Staged batch
	if len(a.entry.staged) > 0 {
		var list strings.Builder
		for _, e := range a.entry.staged {
			name := e.Category
			if name == catalog.OtherCategory {
				name = e.CustomLabel
			}
			list.WriteString(fmt.Sprintf("%s  %s\n", cli.FormatMoney(e.Amount, cur), name))
		}
		list.WriteString("\n")
		list.WriteString(hintStyle.Render("enter submit batch · a add row · u remove last"))
		b.WriteString(components.ContentCard(fmt.Sprintf("Staged (%d)", len(a.entry.staged)), list.String(), cw))
		b.WriteString("\n")
	}

	if !a.entry.active && len(a.entry.staged) == 0 {
		if a.entry.submitted > 0 {
			ok := lipgloss.NewStyle().Foreground(t.Green)
			b.WriteString(ok.Render(fmt.Sprintf("  Added %d expense(s).", a.entry.submitted)))
			b.WriteString("\n\n")
		}
		b.WriteString(hintStyle.Render("  Press a to start an expense entry."))
		b.WriteString("\n")
	}

	return b.String()
}
