package tui

import (
	"fmt"
	"strings"

	"spendwise/internal/catalog"
	"spendwise/internal/ledger"
	"spendwise/internal/model"
	"spendwise/internal/store"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingCurrency = iota
	settingMode
	settingTheme
	settingReset
	settingCount
)

type settingsState struct {
	cursor          int
	confirmingReset bool
}

func (a App) updateSettingsTab(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "h":
		a.cycleSetting(-1)
	case "l", "enter":
		if a.settings.cursor == settingReset {
			if key == "enter" {
				a.settings.confirmingReset = true
			}
			return a, nil
		}
		a.cycleSetting(1)
	}
	return a, nil
}

// cycleSetting steps the selected setting forward or backward.
func (a *App) cycleSetting(dir int) {
	switch a.settings.cursor {
	case settingCurrency:
		idx := 0
		for i, c := range catalog.Currencies {
			if c.Code == a.data.Currency {
				idx = i
				break
			}
		}
		n := len(catalog.Currencies)
		a.data = ledger.SetCurrency(a.data, catalog.Currencies[(idx+dir+n)%n].Code)
		a.persist()

	case settingMode:
		idx := 0
		for i, m := range model.Modes {
			if m == a.data.Mode {
				idx = i
				break
			}
		}
		n := len(model.Modes)
		a.data = ledger.SetMode(a.data, model.Modes[(idx+dir+n)%n])
		// The entry form is scoped to a mode's category list.
		a.entry = newEntryState(a.data.Mode)
		a.persist()
		a.recompute()

	case settingTheme:
		a.dark = !a.dark
		a.applyTheme()
		if err := store.Save(a.store, store.KeyDarkMode, a.dark); err != nil {
			a.warning = "theme not saved, changes lost on exit"
		}
	}
}

func (a *App) applyTheme() {
	if a.dark {
		theme.SetActive(a.cfg.Appearance.DarkTheme)
	} else {
		theme.SetActive(a.cfg.Appearance.LightTheme)
	}
}

func (a App) updateResetConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y", "enter":
		a.data = ledger.Reset()
		a.persist()
		a.dark = false
		a.applyTheme()
		if err := store.Save(a.store, store.KeyDarkMode, false); err != nil && a.warning == "" {
			a.warning = "theme not saved, changes lost on exit"
		}
		a.showAnalytics = false
		a.chart = chartPie
		a.entry = newEntryState(a.data.Mode)
		a.settings.confirmingReset = false
		a.recompute()
	case "n", "N", "esc", "q":
		a.settings.confirmingReset = false
	}
	return a, nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if a.settings.confirmingReset {
		warn := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		body := warn.Render("Erase all data and restore defaults?") +
			"\n\nEvery expense, the budget, currency, mode and theme\nchoice will be cleared. This cannot be undone.\n\n" +
			hintStyle.Render("y erase · n keep")
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Red).
			Padding(0, 1).
			Width(cw - 2)
		return card.Render(body) + "\n"
	}

	themeName := a.cfg.Appearance.LightTheme
	if a.dark {
		themeName = a.cfg.Appearance.DarkTheme
	}
	cur := catalog.ResolveCurrency(a.data.Currency)

	rows := []struct {
		label string
		value string
	}{
		{"Currency", fmt.Sprintf("%s %s (%s)", cur.Symbol, cur.Code, cur.Name)},
		{"Mode", string(a.data.Mode)},
		{"Theme", themeName},
		{"Reset all data", "press enter"},
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var list strings.Builder
	for i, r := range rows {
		line := fmt.Sprintf("%-16s %s", r.label, r.value)
		if i == a.settings.cursor {
			list.WriteString(selStyle.Render("> " + line))
		} else {
			list.WriteString(rowStyle.Render("  " + line))
		}
		list.WriteString("\n")
	}
	list.WriteString("\n")
	list.WriteString(hintStyle.Render("j/k select · h/l change · enter activate"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", list.String(), cw))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("  Categories in %s mode: %s",
		a.data.Mode, strings.Join(catalog.CategoriesFor(a.data.Mode), ", "))))
	b.WriteString("\n")
	return b.String()
}
