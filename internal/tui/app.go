// Package tui provides the interactive Bubble Tea dashboard for
// spendwise.
package tui

import (
	"strings"

	"spendwise/internal/config"
	"spendwise/internal/ledger"
	"spendwise/internal/model"
	"spendwise/internal/pipeline"
	"spendwise/internal/store"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab indices.
const (
	tabOverview = iota
	tabAdd
	tabExpenses
	tabAnalytics
	tabSettings
)

// chartType selects the analytics rendering. Session-only: every
// launch starts on pie.
type chartType int

const (
	chartPie chartType = iota
	chartBar
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
)

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	cfg   config.Config

	// Persisted state
	data model.BudgetData
	dark bool

	// Derived on every mutation
	metrics   model.DashboardMetrics
	breakdown []model.CategoryStat
	recent    []model.Expense

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	warning   string // last persistence warning, shown in the status bar

	// Session-only analytics state, reset on every launch
	showAnalytics bool
	chart         chartType

	// Per-tab state
	overview  overviewState
	entry     entryState
	expCursor int
	settings  settingsState
}

// NewApp creates the TUI model. Data is read synchronously: the store
// is local and the working set is one aggregate.
func NewApp(s *store.Store, cfg config.Config) App {
	a := App{
		store: s,
		cfg:   cfg,
		data:  store.Load(s, store.KeyBudgetData, model.DefaultBudgetData()),
		dark:  store.Load(s, store.KeyDarkMode, false),
		chart: chartPie,
	}
	a.entry = newEntryState(a.data.Mode)
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// recompute refreshes every derived view of the data and clamps
// cursors. Aggregation is a fresh fold per call.
func (a *App) recompute() {
	a.metrics = pipeline.Metrics(a.data)
	a.breakdown = pipeline.Breakdown(a.data)
	a.recent = ledger.ByRecency(a.data)

	if a.expCursor >= len(a.recent) {
		a.expCursor = len(a.recent) - 1
	}
	if a.expCursor < 0 {
		a.expCursor = 0
	}
}

// persist writes the aggregate root back. On failure the in-memory
// state stays as the user's view and the status bar carries a warning.
func (a *App) persist() {
	a.warning = ""
	if err := store.Save(a.store, store.KeyBudgetData, a.data); err != nil {
		a.warning = "not saved, changes lost on exit"
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Text-input states swallow everything except their own controls.
		if a.activeTab == tabOverview && a.overview.editing {
			return a.updateBudgetInput(msg)
		}
		if a.activeTab == tabAdd && a.entry.typing() {
			return a.updateEntryInput(msg)
		}
		if a.activeTab == tabSettings && a.settings.confirmingReset {
			return a.updateResetConfirm(key)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab switching. A hotkey for the tab already active falls
		// through so tabs can reuse their own letter (a on Add).
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 && idx != a.activeTab {
				a.activeTab = idx
				return a, nil
			}
		}
		switch key {
		case "tab", "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab", "left":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		}

		switch a.activeTab {
		case tabOverview:
			return a.updateOverviewTab(msg)
		case tabAdd:
			return a.updateAddTab(msg)
		case tabExpenses:
			return a.updateExpensesTab(key)
		case tabAnalytics:
			return a.updateAnalyticsTab(key)
		case tabSettings:
			return a.updateSettingsTab(key)
		}
		return a, nil
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width > 0 && a.width < minTerminalWidth {
		return "\n  Terminal too narrow for spendwise (need 70 columns).\n"
	}

	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	if cw <= 0 {
		cw = 80
	}

	var b strings.Builder
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	if a.showHelp {
		b.WriteString(a.renderHelp())
	} else {
		switch a.activeTab {
		case tabOverview:
			b.WriteString(a.renderOverviewTab(cw))
		case tabAdd:
			b.WriteString(a.renderAddTab(cw))
		case tabExpenses:
			b.WriteString(a.renderExpensesTab(cw))
		case tabAnalytics:
			b.WriteString(a.renderAnalyticsTab(cw))
		case tabSettings:
			b.WriteString(a.renderSettingsTab(cw))
		}
	}

	content := b.String()

	// Pin the status bar to the bottom
	contentHeight := lipgloss.Height(content)
	statusHeight := 1
	if pad := a.height - contentHeight - statusHeight; pad > 0 {
		content += strings.Repeat("\n", pad)
	}

	context := string(a.data.Mode) + " · " + a.data.Currency
	content += components.RenderStatusBar(a.width, context, a.warning)

	return content
}

func (a App) renderHelp() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	rows := []struct{ key, desc string }{
		{"o/a/e/n/s", "switch tabs (tab/shift+tab cycle)"},
		{"j/k", "move cursor in lists"},
		{"enter", "confirm / submit / expand analytics"},
		{"x", "delete expense under cursor (Expenses tab)"},
		{"c", "toggle pie/bar chart (Analytics tab)"},
		{"b", "edit the monthly budget (Overview tab)"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("  Keys\n\n")
	for _, r := range rows {
		b.WriteString("  " + keyStyle.Render(lipgloss.NewStyle().Width(12).Render(r.key)))
		b.WriteString(descStyle.Render(r.desc))
		b.WriteString("\n")
	}
	return b.String()
}
