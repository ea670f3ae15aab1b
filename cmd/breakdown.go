package cmd

import (
	"fmt"

	"spendwise/internal/catalog"
	"spendwise/internal/cli"
	"spendwise/internal/pipeline"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Spending breakdown by category",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	data := loadBudgetData(s)
	stats := pipeline.Breakdown(data)
	if len(stats) == 0 {
		fmt.Println("\n  No expenses yet, nothing to break down.")
		return nil
	}

	cur := catalog.ResolveCurrency(data.Currency)

	fmt.Println()
	fmt.Println(cli.RenderTitle("CATEGORY BREAKDOWN"))
	fmt.Println()

	total := pipeline.TotalExpenses(data)
	rows := make([][]string, 0, len(stats)+2)
	for _, cs := range stats {
		rows = append(rows, []string{cs.Name, cli.FormatMoney(cs.Value, cur), cli.FormatPercent(cs.Percentage)})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", cli.FormatMoney(total, cur), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Amount", "Share"},
		Rows:    rows,
	}))

	// Horizontal bars scaled to the largest category
	fmt.Println()
	maxVal := stats[0].Value
	for _, cs := range stats {
		fmt.Printf("  %-24s %s %s\n",
			truncate(cs.Name, 24),
			cli.RenderHorizontalBar(cs.Value, maxVal, 30, cli.ColorAccent),
			cli.FormatMoney(cs.Value, cur))
	}
	fmt.Println()

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
