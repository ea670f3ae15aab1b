package store

import (
	"path/filepath"
	"testing"

	"spendwise/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	d := model.DefaultBudgetData()
	d.MonthlyBudget = 1234.56
	d.Currency = "EUR"
	d.Expenses = []model.Expense{
		{ID: "e1", Category: "Food", Amount: 12.5, Timestamp: 1700000000000},
	}

	if err := Save(s, KeyBudgetData, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := Load(s, KeyBudgetData, model.DefaultBudgetData())
	if got.MonthlyBudget != d.MonthlyBudget || got.Currency != d.Currency {
		t.Fatalf("loaded %+v, want %+v", got, d)
	}
	if len(got.Expenses) != 1 || got.Expenses[0] != d.Expenses[0] {
		t.Fatalf("loaded expenses %+v, want %+v", got.Expenses, d.Expenses)
	}
}

func TestLoad_MissingKeyYieldsDefault(t *testing.T) {
	s := openTestStore(t)

	def := model.DefaultBudgetData()
	got := Load(s, KeyBudgetData, def)
	if got.Currency != "USD" || got.Mode != model.ModePersonal || len(got.Expenses) != 0 {
		t.Fatalf("missing key load = %+v, want default", got)
	}

	if dark := Load(s, KeyDarkMode, false); dark {
		t.Fatal("missing dark-mode key loaded true, want false")
	}
}

func TestLoad_MalformedPayloadYieldsDefault(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.db.Exec(
		"INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)",
		KeyBudgetData, "{not json",
	); err != nil {
		t.Fatalf("seeding malformed row: %v", err)
	}

	got := Load(s, KeyBudgetData, model.DefaultBudgetData())
	if got.Currency != "USD" || len(got.Expenses) != 0 {
		t.Fatalf("malformed payload load = %+v, want default", got)
	}
}

func TestSave_VisibleToNextLoadAndNextOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := Save(s, KeyDarkMode, true); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Load(s, KeyDarkMode, false) {
		t.Fatal("same-session load after save returned false")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	if !Load(s2, KeyDarkMode, false) {
		t.Fatal("value did not survive a reopen")
	}
}

func TestSave_WritesThroughMirror(t *testing.T) {
	s := openTestStore(t)

	if err := Save(s, "k", 42); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if raw, ok := s.mirror["k"]; !ok || raw != "42" {
		t.Fatalf("mirror[k] = %q (present=%v), want \"42\"", raw, ok)
	}

	// A later load is served from the mirror even if the table row is
	// clobbered underneath.
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", "k"); err != nil {
		t.Fatalf("deleting row: %v", err)
	}
	if got := Load(s, "k", 0); got != 42 {
		t.Fatalf("mirror-backed load = %d, want 42", got)
	}
}
