package pipeline

import (
	"math"
	"testing"

	"spendwise/internal/model"
)

func data(budget float64, expenses ...model.Expense) model.BudgetData {
	d := model.DefaultBudgetData()
	d.MonthlyBudget = budget
	d.Expenses = expenses
	return d
}

func exp(category string, amount float64, ts int64) model.Expense {
	return model.Expense{ID: category + "-id", Category: category, Amount: amount, Timestamp: ts}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMetrics_UnderBudget(t *testing.T) {
	d := data(1000, exp("Food", 200, 1), exp("Transport", 100, 2))

	m := Metrics(d)
	if !approx(m.TotalExpenses, 300) {
		t.Fatalf("TotalExpenses = %v, want 300", m.TotalExpenses)
	}
	if !approx(m.Remaining, 700) {
		t.Fatalf("Remaining = %v, want 700", m.Remaining)
	}
	if m.IsOverBudget {
		t.Fatal("IsOverBudget = true, want false")
	}
	if !approx(m.PercentageUsed, 30) {
		t.Fatalf("PercentageUsed = %v, want 30", m.PercentageUsed)
	}
}

func TestMetrics_OverBudget(t *testing.T) {
	d := data(100, exp("Food", 150, 1))

	m := Metrics(d)
	if !m.IsOverBudget {
		t.Fatal("IsOverBudget = false, want true")
	}
	if !approx(m.Remaining, -50) {
		t.Fatalf("Remaining = %v, want -50", m.Remaining)
	}
	if !approx(m.PercentageUsed, 150) {
		t.Fatalf("PercentageUsed = %v, want 150", m.PercentageUsed)
	}
}

func TestMetrics_ZeroBudget(t *testing.T) {
	d := data(0, exp("Food", 50, 1))

	m := Metrics(d)
	if m.PercentageUsed != 0 {
		t.Fatalf("PercentageUsed with zero budget = %v, want 0", m.PercentageUsed)
	}
	if !m.IsOverBudget {
		t.Fatal("IsOverBudget = false, want true (remaining is negative)")
	}
}

func TestMetrics_Empty(t *testing.T) {
	m := Metrics(data(500))
	if m.TotalExpenses != 0 || m.PercentageUsed != 0 || m.IsOverBudget {
		t.Fatalf("empty data metrics = %+v, want zeros", m)
	}
	if m.TopCategory != nil {
		t.Fatalf("TopCategory = %+v, want nil", m.TopCategory)
	}
}

func TestCategoryTotals_FirstAppearanceOrder(t *testing.T) {
	d := data(0,
		exp("Food", 10, 1),
		exp("Transport", 5, 2),
		exp("Food", 20, 3),
	)

	totals := CategoryTotals(d)
	if len(totals) != 2 {
		t.Fatalf("len(totals) = %d, want 2", len(totals))
	}
	if totals[0].Name != "Food" || !approx(totals[0].Value, 30) {
		t.Fatalf("totals[0] = %+v, want Food=30", totals[0])
	}
	if totals[1].Name != "Transport" || !approx(totals[1].Value, 5) {
		t.Fatalf("totals[1] = %+v, want Transport=5", totals[1])
	}
}

func TestBreakdown_SortedDescWithRoundedShares(t *testing.T) {
	d := data(0,
		exp("Transport", 1, 1),
		exp("Food", 2, 2),
	)

	stats := Breakdown(d)
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}
	if stats[0].Name != "Food" {
		t.Fatalf("stats[0].Name = %q, want Food", stats[0].Name)
	}
	// 2/3 and 1/3 round to one decimal.
	if stats[0].Percentage != 66.7 {
		t.Fatalf("stats[0].Percentage = %v, want 66.7", stats[0].Percentage)
	}
	if stats[1].Percentage != 33.3 {
		t.Fatalf("stats[1].Percentage = %v, want 33.3", stats[1].Percentage)
	}
}

func TestBreakdown_TieGoesToFirstInserted(t *testing.T) {
	d := data(0,
		exp("Transport", 50, 1),
		exp("Food", 50, 2),
	)

	stats := Breakdown(d)
	if stats[0].Name != "Transport" {
		t.Fatalf("tied top = %q, want Transport (first inserted)", stats[0].Name)
	}

	top := TopCategory(d)
	if top == nil || top.Name != "Transport" {
		t.Fatalf("TopCategory = %+v, want Transport", top)
	}
}

func TestBreakdown_ShareSumNearHundred(t *testing.T) {
	d := data(0,
		exp("Food", 33.33, 1),
		exp("Transport", 33.33, 2),
		exp("Entertainment", 33.34, 3),
	)

	var sum float64
	for _, cs := range Breakdown(d) {
		sum += cs.Percentage
	}
	if math.Abs(sum-100) > 0.2 {
		t.Fatalf("percentage sum = %v, want within 0.2 of 100", sum)
	}
}

func TestBreakdown_ValuesSumMatchesTotal(t *testing.T) {
	d := data(0,
		exp("Food", 12.5, 1),
		exp("Food", 7.25, 2),
		exp("Transport", 3.1, 3),
		exp("Health", 44.44, 4),
	)

	var sum float64
	for _, cs := range Breakdown(d) {
		sum += cs.Value
	}
	if !approx(sum, TotalExpenses(d)) {
		t.Fatalf("breakdown value sum = %v, total = %v", sum, TotalExpenses(d))
	}
}
