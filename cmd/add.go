package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"spendwise/internal/catalog"
	"spendwise/internal/cli"
	"spendwise/internal/ledger"
	"spendwise/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagAs string

var addCmd = &cobra.Command{
	Use:   "add [CATEGORY=AMOUNT ...]",
	Short: "Add one or more expenses",
	Long: `Add expenses as CATEGORY=AMOUNT pairs, committed as one batch.

Categories come from the active mode's list (see "spendwise mode").
Use Other=AMOUNT together with --as LABEL to record a custom category.
With no arguments an interactive form is started.`,
	Example: `  spendwise add "Food & Dining"=42.50 Transportation=12
  spendwise add Other=99 --as "Aquarium gear"
  spendwise add`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAs, "as", "", "Custom category label for Other entries")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	data := loadBudgetData(s)

	var entries []ledger.Entry
	if len(args) == 0 {
		entries, err = promptEntries(data.Mode)
		if err != nil {
			return err
		}
	} else {
		entries, err = parseEntryArgs(args, data.Mode)
		if err != nil {
			return err
		}
	}

	before := len(data.Expenses)
	data = ledger.Submit(data, entries)
	committed := len(data.Expenses) - before

	if committed == 0 {
		fmt.Println("  Nothing to add.")
		return nil
	}

	saveBudgetData(s, data)

	cur := catalog.ResolveCurrency(data.Currency)
	for _, e := range data.Expenses[before:] {
		fmt.Printf("  Added %s  %s\n", cli.FormatMoney(e.Amount, cur), e.Category)
	}
	if dropped := len(entries) - committed; dropped > 0 {
		fmt.Printf("  Skipped %d invalid entr%s.\n", dropped, plural(dropped, "y", "ies"))
	}

	return nil
}

// parseEntryArgs turns CATEGORY=AMOUNT args into ledger entries,
// checking each category against the active mode's list.
func parseEntryArgs(args []string, mode model.Mode) ([]ledger.Entry, error) {
	valid := catalog.CategoriesFor(mode)

	var entries []ledger.Entry
	for _, arg := range args {
		category, amountStr, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected CATEGORY=AMOUNT, got %q", arg)
		}

		if !containsFold(valid, category) {
			return nil, fmt.Errorf("category %q is not in the %s list; valid: %s",
				category, mode, strings.Join(valid, ", "))
		}

		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return nil, fmt.Errorf("amount %q is not a number", amountStr)
		}

		entry := ledger.Entry{Category: canonical(valid, category), Amount: amount}
		if entry.Category == catalog.OtherCategory {
			if flagAs == "" {
				return nil, fmt.Errorf("Other entries need --as LABEL")
			}
			entry.CustomLabel = flagAs
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// promptEntries stages a batch interactively, one entry per form pass.
func promptEntries(mode model.Mode) ([]ledger.Entry, error) {
	categories := catalog.CategoriesFor(mode)
	options := huh.NewOptions(categories...)

	var entries []ledger.Entry
	for {
		var (
			category string
			label    string
			amount   string
			more     bool
		)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(fmt.Sprintf("Category (%s mode)", mode)).
					Options(options...).
					Value(&category),
			),
		)
		if err := form.Run(); err != nil {
			return nil, err
		}

		fields := []huh.Field{}
		if category == catalog.OtherCategory {
			fields = append(fields, huh.NewInput().
				Title("Custom category").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("a label is required for Other")
					}
					return nil
				}).
				Value(&label))
		}
		fields = append(fields,
			huh.NewInput().
				Title("Amount").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}).
				Value(&amount),
			huh.NewConfirm().
				Title("Add another entry?").
				Value(&more),
		)

		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			return nil, err
		}

		v, _ := strconv.ParseFloat(amount, 64)
		entries = append(entries, ledger.Entry{Category: category, CustomLabel: label, Amount: v})

		if !more {
			return entries, nil
		}
	}
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

// canonical returns the list's own spelling for a case-insensitive match.
func canonical(list []string, s string) string {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return item
		}
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
