package model

import "testing"

func TestParseCost(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind CostKind
		amt  float64
	}{
		{"integer", "500", CostAmount, 500},
		{"decimal", "12.5", CostAmount, 12.5},
		{"zero", "0", CostAmount, 0},
		{"padded", "  1200 ", CostAmount, 1200},
		{"sentinel", "N/A", CostNA, 0},
		{"padded sentinel", " N/A ", CostNA, 0},
		{"lowercase na is not the sentinel", "n/a", CostInvalid, 0},
		{"words", "TBD", CostInvalid, 0},
		{"negative", "-5", CostInvalid, 0},
		{"empty", "", CostInvalid, 0},
		{"trailing junk", "12x", CostInvalid, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseCost(tt.raw)
			if c.Kind != tt.kind {
				t.Errorf("ParseCost(%q).Kind = %v, want %v", tt.raw, c.Kind, tt.kind)
			}
			if c.Kind == CostAmount && c.Amount != tt.amt {
				t.Errorf("ParseCost(%q).Amount = %v, want %v", tt.raw, c.Amount, tt.amt)
			}
		})
	}
}

func TestCostString(t *testing.T) {
	tests := []struct {
		cost Cost
		want string
	}{
		{Naira(500), "500"},
		{Naira(12.5), "12.5"},
		{Naira(0), "0"},
		{NA(), "N/A"},
		{ParseCost("TBD"), "TBD"},
	}

	for _, tt := range tests {
		if got := tt.cost.String(); got != tt.want {
			t.Errorf("Cost.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCountable(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want bool
	}{
		{"priced row", LineItem{Cost: Naira(100)}, true},
		{"excluded row", LineItem{Cost: Naira(100), ExcludeFromSum: true}, false},
		{"n/a row", LineItem{Cost: NA()}, false},
		{"invalid row", LineItem{Cost: ParseCost("??")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Countable(); got != tt.want {
				t.Errorf("Countable() = %v, want %v", got, tt.want)
			}
		})
	}
}

// FuzzParseCost checks that classification never panics and that amounts
// are always non-negative.
func FuzzParseCost(f *testing.F) {
	f.Add("500")
	f.Add("N/A")
	f.Add("12.5")
	f.Add("-1")
	f.Add("1e3")
	f.Add("")

	f.Fuzz(func(t *testing.T, raw string) {
		c := ParseCost(raw)
		if c.Kind == CostAmount && c.Amount < 0 {
			t.Errorf("ParseCost(%q) produced negative amount %v", raw, c.Amount)
		}
		if c.Kind == CostNA && c.String() != "N/A" {
			t.Errorf("ParseCost(%q) lost the sentinel rendering", raw)
		}
	})
}
