package tui

import (
	"errors"
	"strings"
	"testing"

	"tally/internal/model"
	"tally/internal/pipeline"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < 4; active++ {
		a := App{activeTab: active}
		pos := 1 // leading space in the tab bar

		for i := 0; i < 4; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < 3 {
				pos += 2 // separator
			}
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Overview"),
		len("Items"),
		len("Phases"),
		len("Settings"),
	}

	w := nameWidths[tabIdx]
	if tabIdx != activeIdx {
		w += 2 // inactive tabs bracket the shortcut letter
	}
	return w
}

func TestCycleOption(t *testing.T) {
	opts := []string{"All", "Staging", "Audio"}

	if got := cycleOption("All", opts); got != "Staging" {
		t.Errorf("cycleOption(All) = %q, want Staging", got)
	}
	if got := cycleOption("Audio", opts); got != "All" {
		t.Errorf("cycleOption(Audio) = %q, want All (wrap)", got)
	}
	if got := cycleOption("missing", opts); got != "All" {
		t.Errorf("cycleOption(missing) = %q, want first option", got)
	}
}

func testLedger() []model.LineItem {
	return []model.LineItem{
		{ID: "A-1", Description: "Stage deck", Event: "Load-In", Type: "Staging", Cost: model.Naira(500), Status: model.StatusPriced},
		{ID: "A-2", Description: "Line array hire", Event: "Load-In", Type: "Audio", Cost: model.NA(), Status: model.StatusUnpriced},
		{ID: "B-1", Description: "Catering deposit", Event: "Show Day", Type: "Catering", Cost: model.Naira(300), Status: model.StatusPriced},
	}
}

func TestFilterKeyCyclesType(t *testing.T) {
	a := App{loaded: true, items: testLedger(), filter: pipeline.NewFilter()}
	a.recompute()

	if len(a.visible) != 3 {
		t.Fatalf("visible = %d items, want 3", len(a.visible))
	}

	m, _ := a.updateKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	a = m.(App)

	if a.filter.Type != "Staging" {
		t.Fatalf("after f, filter.Type = %q, want Staging", a.filter.Type)
	}
	if len(a.visible) != 1 || a.visible[0].ID != "A-1" {
		t.Errorf("visible = %+v, want only A-1", a.visible)
	}

	// F resets both dropdowns
	m, _ = a.updateKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'F'}})
	a = m.(App)
	if !a.filter.IsAll() {
		t.Errorf("after F, filter = %+v, want All/All", a.filter)
	}
}

func TestToggleDoneMsgFlipsOneItem(t *testing.T) {
	a := App{loaded: true, items: testLedger()}
	a.recompute()

	m, _ := a.Update(toggleDoneMsg{id: "B-1", done: true})
	a = m.(App)

	for _, it := range a.items {
		want := it.ID == "B-1"
		if it.Done != want {
			t.Errorf("item %s Done = %v, want %v", it.ID, it.Done, want)
		}
	}
}

func TestSpaceTogglesInMemoryItem(t *testing.T) {
	a := App{loaded: true, items: testLedger(), filter: pipeline.NewFilter()}
	a.recompute()
	a.activeTab = 1
	a.itemsState.cursor = 1

	m, _, handled := a.updateItemsKeys(" ")
	if !handled {
		t.Fatal("space not handled by items tab")
	}
	a = m.(App)

	if !a.items[1].Done {
		t.Error("selected item not toggled")
	}
	if a.items[0].Done || a.items[2].Done {
		t.Error("space toggled more than the selected item")
	}
}

func TestNoteExpiresOnlyForCurrentSeq(t *testing.T) {
	a := App{}

	if cmd := a.setNote("first", false); cmd == nil {
		t.Fatal("setNote returned no expiry cmd")
	}
	if cmd := a.setNote("second", true); cmd == nil {
		t.Fatal("setNote returned no expiry cmd")
	}

	// Stale expiry keeps the newer note
	m, _ := a.Update(noteExpiredMsg{seq: 1})
	a = m.(App)
	if a.note != "second" || !a.noteErr {
		t.Fatalf("stale expiry cleared note: %q", a.note)
	}

	m, _ = a.Update(noteExpiredMsg{seq: 2})
	a = m.(App)
	if a.note != "" || a.noteErr {
		t.Errorf("current expiry left note %q", a.note)
	}
}

func TestDataLoadFailureSetsNote(t *testing.T) {
	a := App{items: testLedger()}

	m, _ := a.Update(dataLoadedMsg{err: errFake})
	a = m.(App)

	if !a.loaded {
		t.Error("load failure should still mark the app loaded")
	}
	if len(a.items) != 0 {
		t.Errorf("items kept after failed load: %d", len(a.items))
	}
	if a.note == "" || !a.noteErr {
		t.Errorf("no error note after failed load: %q", a.note)
	}
}

var errFake = errors.New("ledger file missing")

func TestClipboardFailureSurfacesOnce(t *testing.T) {
	a := App{loaded: true}

	m, cmd := a.Update(clipboardDoneMsg{rows: 5, err: errFake})
	a = m.(App)

	if a.note == "" || !a.noteErr {
		t.Fatalf("clipboard failure produced no error note: %q", a.note)
	}
	// Only the expiry timer follows; no retry command
	if cmd == nil {
		t.Fatal("expected note expiry cmd")
	}
}

func TestFilterItemsBySearch(t *testing.T) {
	items := testLedger()

	tests := []struct {
		query string
		want  []string
	}{
		{"a-1", []string{"A-1"}},
		{"LINE ARRAY", []string{"A-2"}},
		{"load-in", []string{"A-1", "A-2"}},
		{"catering", []string{"B-1"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		got := filterItemsBySearch(items, tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("search %q matched %d items, want %d", tt.query, len(got), len(tt.want))
			continue
		}
		for i, it := range got {
			if it.ID != tt.want[i] {
				t.Errorf("search %q item %d = %s, want %s", tt.query, i, it.ID, tt.want[i])
			}
		}
	}
}

func TestScrollLinesClamps(t *testing.T) {
	body := "one\ntwo\nthree"

	if got := scrollLines(body, 0); got != body {
		t.Errorf("scroll 0 changed body: %q", got)
	}
	if got := scrollLines(body, 1); got != "two\nthree" {
		t.Errorf("scroll 1 = %q", got)
	}
	if got := scrollLines(body, 99); got != "three" {
		t.Errorf("over-scroll = %q, want last line kept", got)
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := App{width: 40, height: 12, loaded: true}

	view := a.View()
	if !strings.Contains(view, "Terminal too narrow") {
		t.Errorf("narrow view missing notice:\n%s", view)
	}
}

func TestPhaseInitials(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Pre-Production", "PP"},
		{"Show Day", "SD"},
		{"Load-In", "LI"},
		{"Contingency Budget", "CB"},
		{"", "?"},
	}
	for _, tt := range tests {
		if got := phaseInitials(tt.in); got != tt.want {
			t.Errorf("phaseInitials(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
