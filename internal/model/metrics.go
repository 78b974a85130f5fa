package model

// PhaseCost is the spend accumulated under one event phase.
type PhaseCost struct {
	Phase    string
	Total    float64 // confirmed cost only; excluded rows contribute nothing
	Items    int
	Unpriced int
}

// BudgetMetrics is the aggregate view over a ledger, recomputed fresh on
// every pass. UnpricedItems preserves ledger order; TopGroupings holds at
// most three phases, sorted by descending total.
type BudgetMetrics struct {
	TotalConfirmed float64
	UnpricedItems  []LineItem
	TopGroupings   []PhaseCost
}
