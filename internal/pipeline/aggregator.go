// Package pipeline derives dashboard metrics and category analytics
// from the current expense snapshot. Everything here is a pure fold
// over BudgetData, recomputed on every query.
package pipeline

import (
	"math"
	"sort"

	"spendwise/internal/model"
)

// TotalExpenses sums all recorded amounts.
func TotalExpenses(d model.BudgetData) float64 {
	var total float64
	for _, e := range d.Expenses {
		total += e.Amount
	}
	return total
}

// Metrics computes the top-level dashboard figures from the expense
// snapshot plus the monthly budget.
func Metrics(d model.BudgetData) model.DashboardMetrics {
	total := TotalExpenses(d)
	remaining := d.MonthlyBudget - total

	// Percentage is defined as exactly 0 when no budget is set.
	pct := 0.0
	if d.MonthlyBudget > 0 {
		pct = total / d.MonthlyBudget * 100
	}

	return model.DashboardMetrics{
		TotalExpenses:  total,
		Remaining:      remaining,
		IsOverBudget:   remaining < 0,
		PercentageUsed: pct,
		TopCategory:    TopCategory(d),
	}
}

// CategoryTotal is one category's summed amount.
type CategoryTotal struct {
	Name  string
	Value float64
}

// CategoryTotals sums amounts per category in a single pass. The
// result is ordered by first appearance in the expense sequence, which
// pins the tie-break order used by Breakdown and TopCategory. The
// category set is whatever actually occurs in the data; historical
// free-text labels stay as their own keys.
func CategoryTotals(d model.BudgetData) []CategoryTotal {
	idx := make(map[string]int)
	var totals []CategoryTotal

	for _, e := range d.Expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(totals)
			idx[e.Category] = i
			totals = append(totals, CategoryTotal{Name: e.Category})
		}
		totals[i].Value += e.Amount
	}
	return totals
}

// Breakdown returns per-category shares sorted descending by value.
// The sort is stable over first-appearance order, so equal values keep
// the first-inserted category first. Percentages are rounded to one
// decimal for display.
func Breakdown(d model.BudgetData) []model.CategoryStat {
	totals := CategoryTotals(d)
	if len(totals) == 0 {
		return nil
	}

	var sum float64
	for _, ct := range totals {
		sum += ct.Value
	}

	stats := make([]model.CategoryStat, len(totals))
	for i, ct := range totals {
		pct := 0.0
		if sum > 0 {
			pct = math.Round(ct.Value/sum*1000) / 10
		}
		stats[i] = model.CategoryStat{Name: ct.Name, Value: ct.Value, Percentage: pct}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Value > stats[j].Value
	})
	return stats
}

// TopCategory returns the highest-spend category, or nil when there
// are no expenses. Ties go to the category first seen in the sequence.
func TopCategory(d model.BudgetData) *model.CategoryStat {
	stats := Breakdown(d)
	if len(stats) == 0 {
		return nil
	}
	top := stats[0]
	return &top
}
