// Package model defines the core domain types for spendwise.
package model

// Mode selects which category list applies to new expenses.
type Mode string

// All expense modes.
const (
	ModePersonal     Mode = "Personal"
	ModeBusiness     Mode = "Business"
	ModeDropshipping Mode = "Dropshipping"
	ModeInvestment   Mode = "Investment"
	ModeTravel       Mode = "Travel"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModePersonal, ModeBusiness, ModeDropshipping, ModeInvestment, ModeTravel}

// ValidMode reports whether m is one of the known modes.
func ValidMode(m Mode) bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

// Expense is a single recorded expense. Records are immutable once
// created; a correction is a remove followed by a fresh add.
type Expense struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
}

// BudgetData is the persisted aggregate root. Every mutation replaces
// the whole structure in the store; there are no partial writes.
type BudgetData struct {
	MonthlyBudget float64   `json:"monthlyBudget"`
	Expenses      []Expense `json:"expenses"`
	Currency      string    `json:"currency"`
	Mode          Mode      `json:"mode"`
}

// DefaultBudgetData returns the state used on first run and after a
// wholesale reset.
func DefaultBudgetData() BudgetData {
	return BudgetData{
		MonthlyBudget: 0,
		Expenses:      []Expense{},
		Currency:      "USD",
		Mode:          ModePersonal,
	}
}
