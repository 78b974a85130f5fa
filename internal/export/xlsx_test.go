package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"tally/internal/model"
	"tally/internal/source"
)

func TestXLSXRoundTripsThroughImport(t *testing.T) {
	items := source.Sample()
	b, err := XLSX(items)
	if err != nil {
		t.Fatalf("XLSX() error = %v", err)
	}
	if len(b) == 0 {
		t.Fatal("XLSX() returned empty bytes")
	}

	res, err := source.ParseXLSX(bytes.NewReader(b), source.Mapping{})
	if err != nil {
		t.Fatalf("ParseXLSX() error = %v", err)
	}
	if len(res.Items) != len(items) {
		t.Fatalf("round trip kept %d of %d items", len(res.Items), len(items))
	}

	first := res.Items[0]
	if first.ID != items[0].ID || first.Cost.Amount != items[0].Cost.Amount {
		t.Errorf("first item = %+v, want %+v", first, items[0])
	}
	for i, want := range items {
		got := res.Items[i]
		if got.Status != want.Status || got.ExcludeFromSum != want.ExcludeFromSum {
			t.Errorf("item %d flags = %+v, want %+v", i, got, want)
		}
	}
}

func TestXLSXSummarySheet(t *testing.T) {
	b, err := XLSX(source.Sample())
	if err != nil {
		t.Fatalf("XLSX() error = %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Ledger" || sheets[1] != "Summary" {
		t.Fatalf("sheets = %v", sheets)
	}
	label, err := f.GetCellValue("Summary", "A3")
	if err != nil {
		t.Fatalf("reading summary cell: %v", err)
	}
	if label != "Total Confirmed Budget" {
		t.Errorf("summary A3 = %q", label)
	}
}

func TestXLSXSanitizesFormulaCells(t *testing.T) {
	items := []model.LineItem{
		{ID: "F-1", Description: "=HYPERLINK(evil)", Event: "Load-In",
			Cost: model.Naira(100), Status: model.StatusPriced},
	}
	b, err := XLSX(items)
	if err != nil {
		t.Fatalf("XLSX() error = %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	desc, err := f.GetCellValue("Ledger", "C2")
	if err != nil {
		t.Fatalf("reading cell: %v", err)
	}
	if desc != "'=HYPERLINK(evil)" {
		t.Errorf("description cell = %q, want escaped formula", desc)
	}
}
