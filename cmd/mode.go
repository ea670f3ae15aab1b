package cmd

import (
	"fmt"
	"strings"

	"spendwise/internal/catalog"
	"spendwise/internal/ledger"
	"spendwise/internal/model"

	"github.com/spf13/cobra"
)

var modeCmd = &cobra.Command{
	Use:   "mode [MODE]",
	Short: "Show or set the expense mode",
	Long: `With no argument, lists the modes and the active mode's categories.
With a mode name, switches to it. Switching modes only changes which
categories new expenses may use; recorded expenses are untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMode,
}

func init() {
	rootCmd.AddCommand(modeCmd)
}

func runMode(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	data := loadBudgetData(s)

	if len(args) == 0 {
		var names []string
		for _, m := range model.Modes {
			name := string(m)
			if m == data.Mode {
				name += " (active)"
			}
			names = append(names, name)
		}
		fmt.Printf("\n  Modes: %s\n\n", strings.Join(names, ", "))
		fmt.Printf("  %s categories:\n", data.Mode)
		for _, cat := range catalog.CategoriesFor(data.Mode) {
			fmt.Printf("    - %s\n", cat)
		}
		fmt.Println()
		return nil
	}

	var target model.Mode
	for _, m := range model.Modes {
		if strings.EqualFold(string(m), args[0]) {
			target = m
		}
	}
	if target == "" {
		return fmt.Errorf("unknown mode %q; valid: %s", args[0], joinModes())
	}

	data = ledger.SetMode(data, target)
	saveBudgetData(s, data)

	fmt.Printf("  Mode set to %s.\n", target)
	return nil
}

func joinModes() string {
	names := make([]string, len(model.Modes))
	for i, m := range model.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
