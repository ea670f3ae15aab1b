package catalog

import "spendwise/internal/model"

// OtherCategory is the sentinel closing every category list. Selecting
// it requires a free-text label; the sentinel itself is never recorded.
const OtherCategory = "Other"

var modeCategories = map[model.Mode][]string{
	model.ModePersonal: {
		"Food & Dining",
		"Transportation",
		"Shopping",
		"Entertainment",
		"Bills & Utilities",
		"Healthcare",
		"Education",
		OtherCategory,
	},
	model.ModeBusiness: {
		"Office Supplies",
		"Marketing",
		"Software & Tools",
		"Travel & Meetings",
		"Equipment",
		"Legal & Professional",
		"Insurance",
		OtherCategory,
	},
	model.ModeDropshipping: {
		"Product Cost",
		"Advertising",
		"Shipping",
		"Platform Fees",
		"Tools & Software",
		"Returns & Refunds",
		"Packaging",
		OtherCategory,
	},
	model.ModeInvestment: {
		"Stocks",
		"Bonds",
		"Real Estate",
		"Cryptocurrency",
		"Mutual Funds",
		"Commodities",
		"Education",
		OtherCategory,
	},
	model.ModeTravel: {
		"Flights",
		"Accommodation",
		"Food & Dining",
		"Transportation",
		"Activities",
		"Shopping",
		"Insurance",
		OtherCategory,
	},
}

// CategoriesFor returns the fixed category list for a mode. The mode
// enum is closed, so every value has a list; an unknown mode gets the
// Personal list rather than nil.
func CategoriesFor(mode model.Mode) []string {
	if cats, ok := modeCategories[mode]; ok {
		return cats
	}
	return modeCategories[model.ModePersonal]
}
