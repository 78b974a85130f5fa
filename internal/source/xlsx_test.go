package source

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"tally/internal/model"
)

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"ID", "Description", "Event Phase", "Type", "Cost Type", "Projected Cost", "Notes"},
		{"B-1", "Barricade run, front of stage", "Load-In", "Security", "OPEX", "640000", ""},
		{"B-2", "Drone coverage", "Show Day", "Video", "OPEX", "N/A", "QUOTE NEEDED"},
	}
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}

	res, err := ParseXLSX(&buf, Mapping{})
	if err != nil {
		t.Fatalf("ParseXLSX() error = %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(res.Items))
	}
	if res.Items[0].ID != "B-1" || res.Items[0].Cost.Amount != 640000 {
		t.Errorf("first item = %+v", res.Items[0])
	}
	if res.Items[1].Cost.Kind != model.CostNA || res.Items[1].Status != model.StatusUnpriced {
		t.Errorf("second item = %+v", res.Items[1])
	}
}

func TestParseXLSXRejectsGarbage(t *testing.T) {
	if _, err := ParseXLSX(bytes.NewReader([]byte("not a workbook")), Mapping{}); err == nil {
		t.Error("ParseXLSX() error = nil, want error")
	}
}
