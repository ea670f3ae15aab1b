package model

// DashboardMetrics holds the top-level derived figures for the dashboard.
type DashboardMetrics struct {
	TotalExpenses  float64
	Remaining      float64
	IsOverBudget   bool
	PercentageUsed float64       // 0 when no budget is set
	TopCategory    *CategoryStat // nil when there are no expenses
}

// CategoryStat holds one category's share of total spending.
type CategoryStat struct {
	Name       string
	Value      float64
	Percentage float64 // of total spend, rounded to one decimal
}
