// Package cmd implements the spendwise command tree.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"spendwise/internal/catalog"
	"spendwise/internal/cli"
	"spendwise/internal/config"
	"spendwise/internal/model"
	"spendwise/internal/pipeline"
	"spendwise/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "spendwise",
	Short: "Track a monthly budget and categorized expenses",
	Long:  "spendwise tracks a monthly budget and categorized expenses locally, with analytics over where the money went.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the spendwise database (default: config or ~/.local/share/spendwise)")
}

// openStore opens the store at the configured location. The --data-dir
// flag wins over the config file.
func openStore() (*store.Store, error) {
	cfg, _ := config.Load()
	path := config.StorePath(cfg)
	if flagDataDir != "" {
		path = filepath.Join(flagDataDir, "spendwise.db")
	}
	return store.Open(path)
}

// loadBudgetData reads the aggregate root, falling back to defaults on
// a missing or unreadable record.
func loadBudgetData(s *store.Store) model.BudgetData {
	return store.Load(s, store.KeyBudgetData, model.DefaultBudgetData())
}

// saveBudgetData persists the whole aggregate. A failed write is a
// warning, not an error: the in-memory change already happened and
// stays the user's view for this session.
func saveBudgetData(s *store.Store, d model.BudgetData) {
	if err := store.Save(s, store.KeyBudgetData, d); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderWarning("change not saved, it will not survive a restart: "+err.Error()))
	}
}

func runDashboard(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	data := loadBudgetData(s)
	metrics := pipeline.Metrics(data)
	cur := catalog.ResolveCurrency(data.Currency)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDWISE"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s mode, %s", data.Mode, cur.Code),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Monthly budget", cli.FormatMoney(data.MonthlyBudget, cur)},
			{"Total expenses", cli.FormatMoney(metrics.TotalExpenses, cur)},
			{"Remaining", cli.FormatMoney(metrics.Remaining, cur)},
			{"Budget used", cli.FormatPercent(metrics.PercentageUsed)},
		},
	}))

	if data.MonthlyBudget > 0 {
		fmt.Printf("\n  %s\n", cli.RenderBudgetBar(metrics.PercentageUsed, 40))
	}

	if metrics.IsOverBudget {
		fmt.Println()
		fmt.Println(cli.RenderWarning(fmt.Sprintf("over budget by %s", cli.FormatMoney(-metrics.Remaining, cur))))
	}

	if metrics.TopCategory != nil {
		fmt.Printf("\n  Top category: %s (%s, %s of spend)\n",
			metrics.TopCategory.Name,
			cli.FormatMoney(metrics.TopCategory.Value, cur),
			cli.FormatPercent(metrics.TopCategory.Percentage))
	}

	if len(data.Expenses) == 0 {
		fmt.Println("\n  No expenses yet. Add some with `spendwise add`.")
	}
	fmt.Println()

	return nil
}
