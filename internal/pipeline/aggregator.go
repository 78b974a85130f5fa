// Package pipeline turns a procurement ledger into the derived views the
// dashboard renders: aggregate metrics, phase breakdowns, and filtered rows.
package pipeline

import (
	"sort"
	"strings"

	"tally/internal/model"
)

// Rollup phases are excluded from the top groupings by key, not cost type:
// any phase whose name mentions these is a presentation row.
const (
	phaseKeySummary = "Summary"
	phaseKeyBudget  = "Budget"
)

// Aggregate computes budget metrics over the ledger in a single pass.
// It is pure: no I/O, no mutation of items, and identical output for
// identical input on every call.
func Aggregate(items []model.LineItem) model.BudgetMetrics {
	var m model.BudgetMetrics

	buckets := make(map[string]*model.PhaseCost, 8)
	order := make([]string, 0, 8)

	for _, it := range items {
		if it.Countable() {
			m.TotalConfirmed += it.Cost.Amount
		}
		if it.Status == model.StatusUnpriced {
			m.UnpricedItems = append(m.UnpricedItems, it)
		}

		b, ok := buckets[it.Event]
		if !ok {
			b = &model.PhaseCost{Phase: it.Event}
			buckets[it.Event] = b
			order = append(order, it.Event)
		}
		b.Items++
		if it.Status == model.StatusUnpriced {
			b.Unpriced++
		}
		if it.Countable() {
			b.Total += it.Cost.Amount
		}
	}

	// Candidate phases keep first-occurrence order so that the stable sort
	// breaks total ties deterministically.
	candidates := make([]model.PhaseCost, 0, len(order))
	for _, phase := range order {
		if isRollupPhase(phase) {
			continue
		}
		if b := buckets[phase]; b.Total > 0 {
			candidates = append(candidates, *b)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Total > candidates[j].Total
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	m.TopGroupings = candidates

	return m
}

// PhaseBreakdown returns every phase bucket in first-occurrence order,
// including rollup phases and phases with no confirmed cost.
func PhaseBreakdown(items []model.LineItem) []model.PhaseCost {
	buckets := make(map[string]*model.PhaseCost, 8)
	order := make([]string, 0, 8)

	for _, it := range items {
		b, ok := buckets[it.Event]
		if !ok {
			b = &model.PhaseCost{Phase: it.Event}
			buckets[it.Event] = b
			order = append(order, it.Event)
		}
		b.Items++
		if it.Status == model.StatusUnpriced {
			b.Unpriced++
		}
		if it.Countable() {
			b.Total += it.Cost.Amount
		}
	}

	out := make([]model.PhaseCost, 0, len(order))
	for _, phase := range order {
		out = append(out, *buckets[phase])
	}
	return out
}

// DistinctTypes returns the item categories present, in first-occurrence order.
func DistinctTypes(items []model.LineItem) []string {
	seen := make(map[string]struct{}, 8)
	out := make([]string, 0, 8)
	for _, it := range items {
		if _, ok := seen[it.Type]; ok {
			continue
		}
		seen[it.Type] = struct{}{}
		out = append(out, it.Type)
	}
	return out
}

// DistinctCostTypes returns the cost types present, in first-occurrence order.
func DistinctCostTypes(items []model.LineItem) []string {
	seen := make(map[string]struct{}, 8)
	out := make([]string, 0, 8)
	for _, it := range items {
		if _, ok := seen[it.CostType]; ok {
			continue
		}
		seen[it.CostType] = struct{}{}
		out = append(out, it.CostType)
	}
	return out
}

// DistinctStatuses returns the statuses present, in first-occurrence order.
func DistinctStatuses(items []model.LineItem) []string {
	seen := make(map[string]struct{}, 4)
	out := make([]string, 0, 4)
	for _, it := range items {
		if _, ok := seen[it.Status]; ok {
			continue
		}
		seen[it.Status] = struct{}{}
		out = append(out, it.Status)
	}
	return out
}

func isRollupPhase(phase string) bool {
	return strings.Contains(phase, phaseKeySummary) || strings.Contains(phase, phaseKeyBudget)
}
