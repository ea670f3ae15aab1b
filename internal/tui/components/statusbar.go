package components

import (
	"strings"

	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. warning, when
// non-empty, replaces the right-hand context text.
func RenderStatusBar(width int, context, warning string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	left := " [?]help  [q]uit"
	right := context + " "
	if warning != "" {
		right = warnStyle.Render("⚠ "+warning) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
