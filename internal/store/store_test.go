package store

import (
	"errors"
	"testing"

	"tally/internal/model"
)

// openTestStore creates a store in a temp dir that is cleaned up with the test.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleItems() []model.LineItem {
	return []model.LineItem{
		{ID: "PP-001", Description: "Stage deck hire", Event: "Pre-Production",
			Type: "Staging", Cost: model.Naira(1_200_000), CostType: "CAPEX", Status: model.StatusPriced},
		{ID: "PP-002", Description: "FOH engineer", Event: "Show Day",
			Type: "Crew", Cost: model.NA(), CostType: "OPEX", Status: model.StatusUnpriced},
		{ID: "SUM-001", Description: "Production rollup", Event: "Budget Summary",
			Type: "Admin", Cost: model.Naira(5_000_000), CostType: model.CostTypeSummary,
			Status: model.StatusPriced, ExcludeFromSum: true, Done: true},
		{ID: "PP-003", Description: "Cable sundries", Event: "Load-In",
			Type: "Audio", Cost: model.ParseCost("TBD"), CostType: "OPEX", Status: model.StatusPriced},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	want := sampleItems()

	if err := s.SaveItems(want); err != nil {
		t.Fatalf("SaveItems() error = %v", err)
	}

	got, err := s.LoadItems()
	if err != nil {
		t.Fatalf("LoadItems() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("row %d: ID = %q, want %q (order must survive)", i, got[i].ID, want[i].ID)
		}
		if got[i].Cost.Kind != want[i].Cost.Kind {
			t.Errorf("row %d: cost kind = %v, want %v", i, got[i].Cost.Kind, want[i].Cost.Kind)
		}
		if got[i].ExcludeFromSum != want[i].ExcludeFromSum {
			t.Errorf("row %d: exclude flag lost", i)
		}
		if got[i].Done != want[i].Done {
			t.Errorf("row %d: done flag lost", i)
		}
	}

	if got[0].Cost.Amount != 1_200_000 {
		t.Errorf("numeric cost = %v, want 1200000", got[0].Cost.Amount)
	}
	if got[3].Cost.Kind != model.CostInvalid || got[3].Cost.Raw != "TBD" {
		t.Errorf("invalid cost not preserved: %+v", got[3].Cost)
	}
}

func TestSaveReplacesExistingLedger(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveItems(sampleItems()); err != nil {
		t.Fatal(err)
	}
	replacement := []model.LineItem{
		{ID: "X-1", Cost: model.Naira(10), Status: model.StatusPriced},
	}
	if err := s.SaveItems(replacement); err != nil {
		t.Fatal(err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Count() = %d after replace, want 1", n)
	}
}

func TestToggleDone(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveItems(sampleItems()); err != nil {
		t.Fatal(err)
	}

	done, err := s.ToggleDone("PP-001")
	if err != nil {
		t.Fatalf("ToggleDone() error = %v", err)
	}
	if !done {
		t.Error("first toggle should report done = true")
	}

	done, err = s.ToggleDone("PP-001")
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Error("second toggle should report done = false")
	}

	// Only the toggled row may change.
	items, err := s.LoadItems()
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range items {
		if it.ID == "SUM-001" && !it.Done {
			t.Error("toggling PP-001 altered SUM-001")
		}
	}
}

func TestToggleDoneUnknownID(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveItems(sampleItems()); err != nil {
		t.Fatal(err)
	}

	if _, err := s.ToggleDone("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ToggleDone(unknown) error = %v, want ErrNotFound", err)
	}
	if err := s.SetDone("nope", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetDone(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestEmptyStore(t *testing.T) {
	s := openTestStore(t)

	n, err := s.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Count() = %d on fresh store, want 0", n)
	}

	at, err := s.LastImportedAt()
	if err != nil {
		t.Fatal(err)
	}
	if !at.IsZero() {
		t.Errorf("LastImportedAt() = %v on fresh store, want zero time", at)
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveItems(sampleItems()); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	n, _ := s.Count()
	if n != 0 {
		t.Errorf("Count() = %d after Clear, want 0", n)
	}
}
