// Package ledger implements the expense ledger operations and the
// mutations of the persisted BudgetData aggregate. Every function takes
// the current data and returns the updated copy; callers persist the
// result as a whole.
package ledger

import (
	"sort"
	"strings"
	"time"

	"spendwise/internal/catalog"
	"spendwise/internal/model"

	"github.com/google/uuid"
)

// Entry is one staged category/amount pair awaiting submission.
// CustomLabel substitutes for the "Other" sentinel.
type Entry struct {
	Category    string
	CustomLabel string
	Amount      float64
}

// normalize resolves the sentinel category to its free-text label.
// Downstream code never sees "Other".
func normalize(e Entry) string {
	if e.Category == catalog.OtherCategory {
		return strings.TrimSpace(e.CustomLabel)
	}
	return strings.TrimSpace(e.Category)
}

// Submit validates and appends a batch of entries. Entries with an
// empty normalized category or a non-positive amount are dropped, not
// errors; the rest are committed in submission order with fresh ids and
// one shared capture timestamp.
func Submit(d model.BudgetData, entries []Entry) model.BudgetData {
	now := time.Now().UnixMilli()

	expenses := d.Expenses
	for _, e := range entries {
		category := normalize(e)
		if category == "" || e.Amount <= 0 {
			continue
		}
		expenses = append(expenses, model.Expense{
			ID:        uuid.NewString(),
			Category:  category,
			Amount:    e.Amount,
			Timestamp: now,
		})
	}

	d.Expenses = expenses
	return d
}

// Remove deletes at most one expense by id. Removing an unknown id is a
// no-op.
func Remove(d model.BudgetData, id string) model.BudgetData {
	for i, e := range d.Expenses {
		if e.ID == id {
			expenses := make([]model.Expense, 0, len(d.Expenses)-1)
			expenses = append(expenses, d.Expenses[:i]...)
			expenses = append(expenses, d.Expenses[i+1:]...)
			d.Expenses = expenses
			return d
		}
	}
	return d
}

// ByRecency returns the expenses sorted most recent first. The sort is
// stable: records sharing a timestamp keep their insertion order. The
// stored sequence is not modified.
func ByRecency(d model.BudgetData) []model.Expense {
	out := make([]model.Expense, len(d.Expenses))
	copy(out, d.Expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// SetBudget updates the monthly budget. The budget is never negative;
// out-of-range input clamps to zero.
func SetBudget(d model.BudgetData, amount float64) model.BudgetData {
	if amount < 0 {
		amount = 0
	}
	d.MonthlyBudget = amount
	return d
}

// SetCurrency updates the display currency code. Stored amounts are
// labels-only, so no conversion happens.
func SetCurrency(d model.BudgetData, code string) model.BudgetData {
	d.Currency = code
	return d
}

// SetMode switches the active expense mode. Categories of already
// recorded expenses are untouched.
func SetMode(d model.BudgetData, mode model.Mode) model.BudgetData {
	d.Mode = mode
	return d
}

// Reset returns the default aggregate, discarding all prior state.
func Reset() model.BudgetData {
	return model.DefaultBudgetData()
}
