package export

import (
	"strings"
	"testing"

	"tally/internal/model"
	"tally/internal/source"
)

func TestCSVLayout(t *testing.T) {
	items := []model.LineItem{
		{ID: "A-1", Description: "Stage decking", Event: "Load-In", Type: "Staging",
			CostType: "CAPEX", Cost: model.Naira(450000), Status: model.StatusPriced, Done: true},
		{ID: "A-2", Description: `Drape, 6m "blackout" run`, Event: "Show Day", Type: "Staging",
			CostType: "OPEX", Cost: model.NA(), Status: model.StatusUnpriced},
		{ID: "S-1", Description: "Phase subtotal", Event: "Budget Summary", Type: "Admin",
			CostType: model.CostTypeSummary, Cost: model.Naira(450000), Status: model.StatusPriced,
			ExcludeFromSum: true},
		{ID: "X-1", Description: "Unquoted spare", Event: "Load-Out", Type: "Logistics",
			CostType: "OPEX", Cost: model.ParseCost("TBD"), Status: model.StatusPriced},
	}

	got := CSV(items)
	want := `"Completed","ID","Description","Event Phase","Type","Cost Type","Projected Cost","Notes"
"Yes","A-1","Stage decking","Load-In","Staging","CAPEX","450000",""
"No","A-2","Drape, 6m ""blackout"" run","Show Day","Staging","OPEX","N/A","QUOTE NEEDED"
"No","S-1","Phase subtotal","Budget Summary","Admin","Summary","450000","SUMMARY LINE"
"No","X-1","Unquoted spare","Load-Out","Logistics","OPEX","",""
`
	if got != want {
		t.Errorf("CSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestCSVNotesPrecedence(t *testing.T) {
	items := []model.LineItem{
		{ID: "S-2", Description: "Pending subtotal", Event: "Budget Summary",
			CostType: model.CostTypeSummary, Cost: model.NA(),
			Status: model.StatusUnpriced, ExcludeFromSum: true},
	}
	got := CSV(items)
	if !strings.Contains(got, `"QUOTE NEEDED"`) {
		t.Errorf("CSV() = %s, want quote marker for unpriced summary row", got)
	}
	if strings.Contains(got, "SUMMARY LINE") {
		t.Errorf("CSV() = %s, quote marker should win over summary marker", got)
	}
}

func TestCSVEmptyLedger(t *testing.T) {
	want := `"Completed","ID","Description","Event Phase","Type","Cost Type","Projected Cost","Notes"` + "\n"
	if got := CSV(nil); got != want {
		t.Errorf("CSV(nil) = %q, want header only", got)
	}
}

func TestCSVQuotesEveryField(t *testing.T) {
	got := CSV(source.Sample())
	for i, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
			t.Errorf("line %d not fully quoted: %s", i+1, line)
		}
	}
}

func TestCSVRoundTripsThroughImport(t *testing.T) {
	items := source.Sample()
	res, err := source.ParseCSV(strings.NewReader(CSV(items)), source.Mapping{})
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(res.Items) != len(items) {
		t.Fatalf("round trip kept %d of %d items", len(res.Items), len(items))
	}
	for i, want := range items {
		got := res.Items[i]
		if got.ID != want.ID || got.Description != want.Description {
			t.Errorf("item %d = %+v, want %+v", i, got, want)
		}
		if got.Event != want.Event || got.Type != want.Type || got.CostType != want.CostType {
			t.Errorf("item %d fields = %+v, want %+v", i, got, want)
		}
		if got.Status != want.Status || got.Done != want.Done {
			t.Errorf("item %d flags = %+v, want %+v", i, got, want)
		}
		if got.Cost.Kind != want.Cost.Kind {
			t.Errorf("item %d cost kind = %v, want %v", i, got.Cost.Kind, want.Cost.Kind)
		}
		if want.Cost.Kind == model.CostAmount && got.Cost.Amount != want.Cost.Amount {
			t.Errorf("item %d cost = %v, want %v", i, got.Cost.Amount, want.Cost.Amount)
		}
		if got.ExcludeFromSum != want.ExcludeFromSum {
			t.Errorf("item %d exclusion = %v, want %v", i, got.ExcludeFromSum, want.ExcludeFromSum)
		}
	}
}
