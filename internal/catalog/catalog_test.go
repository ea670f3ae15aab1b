package catalog

import (
	"testing"

	"spendwise/internal/model"
)

func TestCategoriesFor_EveryModeEndsWithOther(t *testing.T) {
	for _, mode := range model.Modes {
		cats := CategoriesFor(mode)
		if len(cats) != 8 {
			t.Fatalf("%s: %d categories, want 8", mode, len(cats))
		}
		if cats[len(cats)-1] != OtherCategory {
			t.Fatalf("%s: last category = %q, want %q", mode, cats[len(cats)-1], OtherCategory)
		}

		seen := make(map[string]bool, len(cats))
		for _, c := range cats {
			if seen[c] {
				t.Fatalf("%s: duplicate category %q", mode, c)
			}
			seen[c] = true
		}
	}
}

func TestCategoriesFor_UnknownModeFallsBackToPersonal(t *testing.T) {
	got := CategoriesFor(model.Mode("Nonsense"))
	want := CategoriesFor(model.ModePersonal)
	if len(got) != len(want) {
		t.Fatalf("fallback list has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fallback[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveCurrency_KnownAndFallback(t *testing.T) {
	eur := ResolveCurrency("EUR")
	if eur.Code != "EUR" || eur.Symbol != "€" {
		t.Fatalf("EUR = %+v", eur)
	}

	got := ResolveCurrency("XXX")
	if got.Code != "USD" {
		t.Fatalf("unknown code resolved to %q, want USD", got.Code)
	}
}

func TestCurrencies_RegistryShape(t *testing.T) {
	if len(Currencies) != 10 {
		t.Fatalf("registry holds %d currencies, want 10", len(Currencies))
	}
	seen := make(map[string]bool, len(Currencies))
	for _, c := range Currencies {
		if c.Code == "" || c.Symbol == "" || c.Name == "" {
			t.Fatalf("incomplete currency %+v", c)
		}
		if seen[c.Code] {
			t.Fatalf("duplicate code %q", c.Code)
		}
		seen[c.Code] = true
	}
	if Currencies[0].Code != "USD" {
		t.Fatalf("first registry entry = %q, want USD", Currencies[0].Code)
	}
}
