package ledger

import (
	"testing"

	"spendwise/internal/catalog"
	"spendwise/internal/model"
)

func submit(t *testing.T, d model.BudgetData, entries ...Entry) model.BudgetData {
	t.Helper()
	return Submit(d, entries)
}

func TestSubmit_DropsInvalidKeepsValid(t *testing.T) {
	d := submit(t, model.DefaultBudgetData(),
		Entry{Category: "Food", Amount: 10},
		Entry{Category: "Transport", Amount: 0},
		Entry{Category: "Health", Amount: -5},
		Entry{Category: catalog.OtherCategory, CustomLabel: "   ", Amount: 3},
		Entry{Category: "Entertainment", Amount: 7.5},
	)

	if len(d.Expenses) != 2 {
		t.Fatalf("len(Expenses) = %d, want 2", len(d.Expenses))
	}
	if d.Expenses[0].Category != "Food" || d.Expenses[1].Category != "Entertainment" {
		t.Fatalf("kept categories = %q, %q; want Food, Entertainment",
			d.Expenses[0].Category, d.Expenses[1].Category)
	}
}

func TestSubmit_SubstitutesCustomLabelForOther(t *testing.T) {
	d := submit(t, model.DefaultBudgetData(),
		Entry{Category: catalog.OtherCategory, CustomLabel: "  Vet Bills  ", Amount: 120},
	)

	if len(d.Expenses) != 1 {
		t.Fatalf("len(Expenses) = %d, want 1", len(d.Expenses))
	}
	if got := d.Expenses[0].Category; got != "Vet Bills" {
		t.Fatalf("Category = %q, want %q", got, "Vet Bills")
	}
}

func TestSubmit_AssignsDistinctIDsAndSharedTimestamp(t *testing.T) {
	d := submit(t, model.DefaultBudgetData(),
		Entry{Category: "Food", Amount: 1},
		Entry{Category: "Transport", Amount: 2},
	)

	if d.Expenses[0].ID == "" || d.Expenses[1].ID == "" {
		t.Fatal("expense without an id")
	}
	if d.Expenses[0].ID == d.Expenses[1].ID {
		t.Fatalf("duplicate id %q within one batch", d.Expenses[0].ID)
	}
	if d.Expenses[0].Timestamp != d.Expenses[1].Timestamp {
		t.Fatalf("batch timestamps differ: %d vs %d",
			d.Expenses[0].Timestamp, d.Expenses[1].Timestamp)
	}
	if d.Expenses[0].Timestamp <= 0 {
		t.Fatalf("Timestamp = %d, want positive epoch millis", d.Expenses[0].Timestamp)
	}
}

func TestRemove_DeletesExactlyOne(t *testing.T) {
	d := submit(t, model.DefaultBudgetData(),
		Entry{Category: "Food", Amount: 1},
		Entry{Category: "Transport", Amount: 2},
		Entry{Category: "Health", Amount: 3},
	)

	d = Remove(d, d.Expenses[1].ID)
	if len(d.Expenses) != 2 {
		t.Fatalf("len(Expenses) = %d, want 2", len(d.Expenses))
	}
	if d.Expenses[0].Category != "Food" || d.Expenses[1].Category != "Health" {
		t.Fatalf("remaining = %q, %q; want Food, Health",
			d.Expenses[0].Category, d.Expenses[1].Category)
	}
}

func TestRemove_UndoesAdd(t *testing.T) {
	base := submit(t, model.DefaultBudgetData(), Entry{Category: "Food", Amount: 1})

	d := submit(t, base, Entry{Category: "Transport", Amount: 9})
	d = Remove(d, d.Expenses[len(d.Expenses)-1].ID)

	if len(d.Expenses) != len(base.Expenses) {
		t.Fatalf("len(Expenses) = %d, want %d", len(d.Expenses), len(base.Expenses))
	}
	for i := range base.Expenses {
		if d.Expenses[i] != base.Expenses[i] {
			t.Fatalf("expense %d = %+v, want %+v", i, d.Expenses[i], base.Expenses[i])
		}
	}
}

func TestRemove_UnknownIDIsNoop(t *testing.T) {
	d := submit(t, model.DefaultBudgetData(), Entry{Category: "Food", Amount: 1})

	got := Remove(d, "no-such-id")
	if len(got.Expenses) != 1 {
		t.Fatalf("len(Expenses) = %d, want 1", len(got.Expenses))
	}
}

func TestByRecency_MostRecentFirstStable(t *testing.T) {
	d := model.DefaultBudgetData()
	d.Expenses = []model.Expense{
		{ID: "a", Category: "Food", Amount: 1, Timestamp: 100},
		{ID: "b", Category: "Transport", Amount: 2, Timestamp: 300},
		{ID: "c", Category: "Health", Amount: 3, Timestamp: 300},
		{ID: "d", Category: "Shopping", Amount: 4, Timestamp: 200},
	}

	got := ByRecency(d)
	wantOrder := []string{"b", "c", "d", "a"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d = %q, want %q", i, got[i].ID, id)
		}
	}

	// Sorting a sorted view is idempotent and never touches the source.
	again := ByRecency(model.BudgetData{Expenses: got})
	for i := range got {
		if again[i].ID != got[i].ID {
			t.Fatalf("resort changed order at %d: %q vs %q", i, again[i].ID, got[i].ID)
		}
	}
	if d.Expenses[0].ID != "a" {
		t.Fatal("ByRecency mutated the stored sequence")
	}
}

func TestSetBudget_ClampsNegativeToZero(t *testing.T) {
	d := SetBudget(model.DefaultBudgetData(), -25)
	if d.MonthlyBudget != 0 {
		t.Fatalf("MonthlyBudget = %v, want 0", d.MonthlyBudget)
	}

	d = SetBudget(d, 1500)
	if d.MonthlyBudget != 1500 {
		t.Fatalf("MonthlyBudget = %v, want 1500", d.MonthlyBudget)
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	d := submit(t, model.DefaultBudgetData(), Entry{Category: "Food", Amount: 9})
	d = SetBudget(d, 2000)
	d = SetCurrency(d, "EUR")
	d = SetMode(d, model.ModeBusiness)

	got := Reset()
	if len(got.Expenses) != 0 {
		t.Fatalf("len(Expenses) = %d, want 0", len(got.Expenses))
	}
	if got.MonthlyBudget != 0 || got.Currency != "USD" || got.Mode != model.ModePersonal {
		t.Fatalf("reset data = %+v, want defaults", got)
	}
}

func TestSetMode_LeavesRecordedCategoriesAlone(t *testing.T) {
	d := submit(t, model.DefaultBudgetData(), Entry{Category: "Food", Amount: 5})

	d = SetMode(d, model.ModeTravel)
	if d.Mode != model.ModeTravel {
		t.Fatalf("Mode = %q, want %q", d.Mode, model.ModeTravel)
	}
	if d.Expenses[0].Category != "Food" {
		t.Fatalf("recorded category changed to %q", d.Expenses[0].Category)
	}
}
