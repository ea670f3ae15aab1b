package cmd

import (
	"fmt"

	"spendwise/internal/catalog"
	"spendwise/internal/cli"
	"spendwise/internal/config"
	"spendwise/internal/ledger"

	"github.com/spf13/cobra"
)

var flagLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List expenses, most recent first",
	RunE:    runList,
}

func init() {
	listCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Show at most N expenses (default: config recent_limit)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	data := loadBudgetData(s)
	if len(data.Expenses) == 0 {
		fmt.Println("\n  No expenses yet. Add some with `spendwise add`.")
		return nil
	}

	limit := flagLimit
	if limit <= 0 {
		cfg, _ := config.Load()
		limit = cfg.General.RecentLimit
	}

	recent := ledger.ByRecency(data)
	shown := recent
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	cur := catalog.ResolveCurrency(data.Currency)
	rows := make([][]string, 0, len(shown))
	for _, e := range shown {
		rows = append(rows, []string{
			cli.FormatTimestamp(e.Timestamp),
			e.Category,
			cli.FormatMoney(e.Amount, cur),
			e.ID,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses (%d of %d)", len(shown), len(recent)),
		Headers: []string{"When", "Category", "Amount", "ID"},
		Rows:    rows,
	}))

	return nil
}
