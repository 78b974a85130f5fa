package source

import "tally/internal/model"

// Sample returns the built-in demo ledger: one mid-size live event, priced
// in naira. Order is significant; it drives display and tie-breaks.
func Sample() []model.LineItem {
	return []model.LineItem{
		{ID: "PRE-001", Description: "Venue deposit, Harbour Point", Event: "Pre-Production",
			Type: "Venue", Cost: model.Naira(3_500_000), CostType: "CAPEX", Status: model.StatusPriced, Done: true},
		{ID: "PRE-002", Description: "Stage and set design retainer", Event: "Pre-Production",
			Type: "Staging", Cost: model.Naira(850_000), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "PRE-003", Description: "Event permits and council levies", Event: "Pre-Production",
			Type: "Admin", Cost: model.Naira(420_000), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "PRE-004", Description: "Artist liaison travel block", Event: "Pre-Production",
			Type: "Logistics", Cost: model.NA(), CostType: "OPEX", Status: model.StatusUnpriced},
		{ID: "PRE-005", Description: "Public liability insurance rider", Event: "Pre-Production",
			Type: "Admin", Cost: model.Naira(610_000), CostType: "OPEX", Status: model.StatusPriced},

		{ID: "LI-001", Description: "Truss and rigging crew, day one", Event: "Load-In",
			Type: "Crew", Cost: model.Naira(780_000), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "LI-002", Description: "Line array hire, 12 boxes a side", Event: "Load-In",
			Type: "Audio", Cost: model.Naira(2_400_000), CostType: "CAPEX", Status: model.StatusPriced, Done: true},
		{ID: "LI-003", Description: "Lighting rig hire incl. movers", Event: "Load-In",
			Type: "Lighting", Cost: model.Naira(1_950_000), CostType: "CAPEX", Status: model.StatusPriced},
		{ID: "LI-004", Description: "LED wall panels, 6x4 m", Event: "Load-In",
			Type: "Video", Cost: model.Naira(2_100_000), CostType: "CAPEX", Status: model.StatusPriced},
		{ID: "LI-005", Description: "Forklift and pallet jacks", Event: "Load-In",
			Type: "Logistics", Cost: model.Naira(240_000), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "LI-006", Description: "Overnight security detail", Event: "Load-In",
			Type: "Security", Cost: model.NA(), CostType: "OPEX", Status: model.StatusUnpriced},

		{ID: "SD-001", Description: "FOH and monitor engineers", Event: "Show Day",
			Type: "Crew", Cost: model.Naira(520_000), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "SD-002", Description: "Generator fuel, 2x 250 kVA", Event: "Show Day",
			Type: "Power", Cost: model.Naira(680_000), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "SD-003", Description: "Catering, crew of sixty", Event: "Show Day",
			Type: "Catering", Cost: model.Naira(900_000), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "SD-004", Description: "Pyrotechnics operator", Event: "Show Day",
			Type: "SFX", Cost: model.ParseCost("TBD"), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "SD-005", Description: "Medical standby team", Event: "Show Day",
			Type: "Security", Cost: model.Naira(300_000), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "SD-006", Description: "Radio comms rental, 40 units", Event: "Show Day",
			Type: "Logistics", Cost: model.Naira(180_000), CostType: "OPEX", Status: model.StatusPriced},

		{ID: "LO-001", Description: "Strike crew, overnight", Event: "Load-Out",
			Type: "Crew", Cost: model.Naira(560_000), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "LO-002", Description: "Waste clearance and venue reset", Event: "Load-Out",
			Type: "Logistics", Cost: model.Naira(210_000), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "LO-003", Description: "Equipment return haulage", Event: "Load-Out",
			Type: "Logistics", Cost: model.NA(), CostType: "OPEX", Status: model.StatusUnpriced},

		{ID: "PE-001", Description: "Damage assessment and repairs", Event: "Post-Event",
			Type: "Admin", Cost: model.NA(), CostType: "OPEX", Status: model.StatusUnpriced},
		{ID: "PE-002", Description: "Crew settlement bonuses", Event: "Post-Event",
			Type: "Crew", Cost: model.Naira(350_000), CostType: "OPEX", Status: model.StatusPriced},
		{ID: "PE-003", Description: "Wrap report and media pack", Event: "Post-Event",
			Type: "Admin", Cost: model.Naira(150_000), CostType: "OPEX", Status: model.StatusPriced},

		{ID: "SUM-001", Description: "Production subtotal", Event: "Budget Summary",
			Type: "Admin", Cost: model.Naira(16_700_000), CostType: model.CostTypeSummary,
			Status: model.StatusPriced, ExcludeFromSum: true},
		{ID: "SUM-002", Description: "Contingency reserve, 10 percent", Event: "Contingency Budget",
			Type: "Admin", Cost: model.Naira(1_670_000), CostType: model.CostTypeBudget,
			Status: model.StatusPriced, ExcludeFromSum: true},
		{ID: "REV-001", Description: "Projected ticket revenue", Event: "Budget Summary",
			Type: "Admin", Cost: model.Naira(25_000_000), CostType: model.CostTypeBudget,
			Status: model.StatusPriced, ExcludeFromSum: true},
	}
}
