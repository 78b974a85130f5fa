// Package model defines domain types for tally ledgers and budget metrics.
package model

import (
	"math"
	"strconv"
	"strings"
)

// Statuses with aggregation semantics. Other status strings are allowed
// in the data; only Unpriced changes behavior.
const (
	StatusPriced   = "Priced"
	StatusUnpriced = "Unpriced"
)

// Cost types with presentation semantics. Summary and Budget rows are
// rollups: hidden under active filters and flagged in exports.
const (
	CostTypeSummary = "Summary"
	CostTypeBudget  = "Budget"
)

// CostKind discriminates the three states a projected cost can be in.
type CostKind int

const (
	// CostAmount is a confirmed numeric cost in naira.
	CostAmount CostKind = iota
	// CostNA is the "N/A" sentinel for costs awaiting a quote.
	CostNA
	// CostInvalid is anything else; it is kept for display but never summed.
	CostInvalid
)

// Cost is a line item's projected cost: a non-negative amount, the "N/A"
// sentinel, or an invalid raw value preserved as entered.
type Cost struct {
	Kind   CostKind
	Amount float64
	Raw    string
}

// Naira returns a confirmed cost of v naira.
func Naira(v float64) Cost {
	return Cost{Kind: CostAmount, Amount: v}
}

// NA returns the not-available cost used for items awaiting quotes.
func NA() Cost {
	return Cost{Kind: CostNA, Raw: "N/A"}
}

// ParseCost classifies a raw cost value. "N/A" maps to the sentinel, a
// parseable non-negative number to an amount, and everything else to an
// invalid cost carrying the original text.
func ParseCost(raw string) Cost {
	s := strings.TrimSpace(raw)
	if s == "N/A" {
		return NA()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Cost{Kind: CostInvalid, Raw: raw}
	}
	return Cost{Kind: CostAmount, Amount: v}
}

// Numeric reports whether the cost is a confirmed amount.
func (c Cost) Numeric() bool {
	return c.Kind == CostAmount
}

// String renders the cost the way it entered the system: the minimal
// numeric form for amounts, "N/A" for the sentinel, the raw text otherwise.
func (c Cost) String() string {
	switch c.Kind {
	case CostAmount:
		return strconv.FormatFloat(c.Amount, 'f', -1, 64)
	case CostNA:
		return "N/A"
	default:
		return c.Raw
	}
}

// LineItem is one record in the procurement ledger. Field order mirrors
// the ledger columns; ID is unique and display order is significant.
type LineItem struct {
	ID             string
	Description    string
	Event          string // phase label, the cost-grouping key; may be empty
	Type           string // item category: Staging, Audio, Catering, ...
	Cost           Cost
	CostType       string // CAPEX, OPEX, Revenue, Summary, Budget, ...
	Status         string
	ExcludeFromSum bool // rollup rows that must not double-count
	Done           bool
}

// Countable reports whether the item's cost participates in sums.
func (it LineItem) Countable() bool {
	return it.Cost.Numeric() && !it.ExcludeFromSum
}

// IsRollup reports whether the item is a Summary or Budget rollup row.
func (it LineItem) IsRollup() bool {
	return it.CostType == CostTypeSummary || it.CostType == CostTypeBudget
}
