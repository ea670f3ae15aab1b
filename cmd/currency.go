package cmd

import (
	"fmt"
	"strings"

	"spendwise/internal/catalog"
	"spendwise/internal/cli"
	"spendwise/internal/ledger"

	"github.com/spf13/cobra"
)

var currencyCmd = &cobra.Command{
	Use:   "currency [CODE]",
	Short: "Show or set the display currency",
	Long: `With no argument, lists the supported currencies.
With a code, sets the display currency. Amounts are never converted;
the currency is a display label only.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCurrency,
}

func init() {
	rootCmd.AddCommand(currencyCmd)
}

func runCurrency(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	data := loadBudgetData(s)

	if len(args) == 0 {
		rows := make([][]string, 0, len(catalog.Currencies))
		for _, c := range catalog.Currencies {
			marker := ""
			if c.Code == data.Currency {
				marker = "active"
			}
			rows = append(rows, []string{c.Code, c.Symbol, c.Name, marker})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Currencies",
			Headers: []string{"Code", "Symbol", "Name", ""},
			Rows:    rows,
		}))
		return nil
	}

	code := strings.ToUpper(args[0])
	resolved := catalog.ResolveCurrency(code)
	if resolved.Code != code {
		return fmt.Errorf("unknown currency %q; run `spendwise currency` to list codes", args[0])
	}

	data = ledger.SetCurrency(data, resolved.Code)
	saveBudgetData(s, data)

	fmt.Printf("  Display currency set to %s (%s).\n", resolved.Code, resolved.Symbol)
	return nil
}
