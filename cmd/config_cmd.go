package cmd

import (
	"fmt"
	"path/filepath"

	"spendwise/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration and data paths",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("  Config unreadable (%v), using defaults.\n", err)
	}

	storePath := config.StorePath(cfg)
	if flagDataDir != "" {
		storePath = filepath.Join(flagDataDir, "spendwise.db")
	}

	fmt.Println()
	fmt.Printf("  Config file:  %s\n", config.ConfigPath())
	fmt.Printf("  Database:     %s\n", storePath)
	fmt.Printf("  Recent limit: %d\n", cfg.General.RecentLimit)
	fmt.Printf("  Dark theme:   %s\n", cfg.Appearance.DarkTheme)
	fmt.Printf("  Light theme:  %s\n", cfg.Appearance.LightTheme)
	fmt.Println()
	return nil
}
