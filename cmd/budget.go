package cmd

import (
	"fmt"
	"strconv"

	"spendwise/internal/catalog"
	"spendwise/internal/cli"
	"spendwise/internal/ledger"
	"spendwise/internal/pipeline"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget AMOUNT",
	Short: "Set the monthly budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("amount %q is not a number", args[0])
	}
	if amount < 0 {
		return fmt.Errorf("budget cannot be negative")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	data := ledger.SetBudget(loadBudgetData(s), amount)
	saveBudgetData(s, data)

	cur := catalog.ResolveCurrency(data.Currency)
	metrics := pipeline.Metrics(data)
	fmt.Printf("  Monthly budget set to %s.\n", cli.FormatMoney(data.MonthlyBudget, cur))
	if metrics.IsOverBudget {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("already over budget by %s", cli.FormatMoney(-metrics.Remaining, cur))))
	}
	return nil
}
