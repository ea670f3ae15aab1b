package cmd

import (
	"fmt"

	"spendwise/internal/ledger"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm"},
	Short:   "Remove an expense by id",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	data := loadBudgetData(s)
	before := len(data.Expenses)
	data = ledger.Remove(data, args[0])

	if len(data.Expenses) == before {
		// Removing an unknown id is a no-op, not an error.
		fmt.Printf("  No expense with id %s.\n", args[0])
		return nil
	}

	saveBudgetData(s, data)
	fmt.Println("  Removed.")
	return nil
}
