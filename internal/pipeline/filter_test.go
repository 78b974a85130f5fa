package pipeline

import (
	"testing"

	"tally/internal/model"
)

func TestFilterVisible(t *testing.T) {
	audio := model.LineItem{ID: "1", Type: "Audio", Status: "Priced", CostType: "CAPEX"}
	staging := model.LineItem{ID: "2", Type: "Staging", Status: "Unpriced", CostType: "OPEX"}
	summary := model.LineItem{ID: "3", Type: "Admin", Status: "Priced", CostType: model.CostTypeSummary}
	budget := model.LineItem{ID: "4", Type: "Admin", Status: "Priced", CostType: model.CostTypeBudget}

	tests := []struct {
		name   string
		filter Filter
		item   model.LineItem
		want   bool
	}{
		{"all shows regular rows", NewFilter(), audio, true},
		{"all shows summary rows", NewFilter(), summary, true},
		{"all shows budget rows", NewFilter(), budget, true},
		{"type match", Filter{Type: "Audio", Cost: FilterAll}, audio, true},
		{"type mismatch", Filter{Type: "Audio", Cost: FilterAll}, staging, false},
		{"cost match", Filter{Type: FilterAll, Cost: "Unpriced"}, staging, true},
		{"cost mismatch", Filter{Type: FilterAll, Cost: "Unpriced"}, audio, false},
		{"both match", Filter{Type: "Staging", Cost: "Unpriced"}, staging, true},
		{"type filter hides summary", Filter{Type: "Admin", Cost: FilterAll}, summary, false},
		{"cost filter hides summary", Filter{Type: FilterAll, Cost: "Priced"}, summary, false},
		{"cost filter hides budget", Filter{Type: FilterAll, Cost: "Priced"}, budget, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Visible(tt.item); got != tt.want {
				t.Errorf("Visible(%s) = %v, want %v", tt.item.ID, got, tt.want)
			}
		})
	}
}

func TestFilterApply(t *testing.T) {
	items := []model.LineItem{
		{ID: "1", Type: "Audio", Status: "Priced"},
		{ID: "2", Type: "Staging", Status: "Unpriced"},
		{ID: "3", Type: "Audio", Status: "Unpriced"},
		{ID: "4", Type: "Admin", Status: "Priced", CostType: model.CostTypeSummary},
	}

	f := Filter{Type: "Audio", Cost: FilterAll}
	got := f.Apply(items)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("Apply(type=Audio) returned %v, want items 1 and 3 in order", ids(got))
	}

	all := NewFilter().Apply(items)
	if len(all) != 4 {
		t.Errorf("Apply(all) returned %d items, want 4", len(all))
	}
}

func ids(items []model.LineItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
