package pipeline

import "tally/internal/model"

// FilterAll is the dropdown value that matches everything.
const FilterAll = "All"

// Filter is the dashboard's dropdown state: an item-category filter and a
// cost-status filter. The zero value is not valid; use NewFilter.
type Filter struct {
	Type string
	Cost string
}

// NewFilter returns the default filter with both dropdowns at "All".
func NewFilter() Filter {
	return Filter{Type: FilterAll, Cost: FilterAll}
}

// IsAll reports whether both dropdowns are at their default.
func (f Filter) IsAll() bool {
	return f.Type == FilterAll && f.Cost == FilterAll
}

// Visible reports whether the item passes the filter. Summary and Budget
// rollup rows are visible only while both dropdowns are at "All".
func (f Filter) Visible(it model.LineItem) bool {
	if it.IsRollup() {
		return f.IsAll()
	}
	if f.Type != FilterAll && it.Type != f.Type {
		return false
	}
	if f.Cost != FilterAll && it.Status != f.Cost {
		return false
	}
	return true
}

// Apply returns the visible items in ledger order.
func (f Filter) Apply(items []model.LineItem) []model.LineItem {
	if f.IsAll() {
		return items
	}
	out := make([]model.LineItem, 0, len(items))
	for _, it := range items {
		if f.Visible(it) {
			out = append(out, it)
		}
	}
	return out
}
