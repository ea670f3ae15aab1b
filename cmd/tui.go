package cmd

import (
	"fmt"

	"spendwise/internal/config"
	"spendwise/internal/store"
	"spendwise/internal/tui"
	"spendwise/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	cfg, _ := config.Load()

	// The theme flag is persisted separately from the aggregate root.
	dark := store.Load(s, store.KeyDarkMode, false)
	if dark {
		theme.SetActive(cfg.Appearance.DarkTheme)
	} else {
		theme.SetActive(cfg.Appearance.LightTheme)
	}

	// Force TrueColor profile so all background styling produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(s, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
