package cmd

import (
	"fmt"

	"spendwise/internal/ledger"
	"spendwise/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all data and restore defaults",
	Long:  "Erase the budget, every expense, and the currency/mode selection, restoring first-run defaults.",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagForce {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title("Erase all spendwise data?").
			Description("Budget, expenses, currency and mode all reset. This cannot be undone.").
			Affirmative("Erase").
			Negative("Keep").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("  Kept everything.")
			return nil
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	saveBudgetData(s, ledger.Reset())
	if err := store.Save(s, store.KeyDarkMode, false); err != nil {
		// Theme flag reset is best-effort; the data reset already happened.
		fmt.Println("  Data reset; theme flag could not be rewritten.")
		return nil
	}

	fmt.Println("  All data reset to defaults.")
	return nil
}
