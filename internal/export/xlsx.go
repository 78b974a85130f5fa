package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"tally/internal/cli"
	"tally/internal/model"
	"tally/internal/pipeline"
)

const (
	ledgerSheet  = "Ledger"
	summarySheet = "Summary"
	nairaFormat  = `"₦"#,##0.00;"₦"-#,##0.00`
)

// XLSX renders the ledger as a styled workbook. The Ledger sheet keeps the
// column headers in row 1 so the workbook can be re-imported; derived
// figures live on a separate Summary sheet.
func XLSX(items []model.LineItem) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), ledgerSheet); err != nil {
		return nil, fmt.Errorf("naming ledger sheet: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1]
	widths := []float64{11, 12, 40, 16, 12, 12, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(ledgerSheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating item style: %w", err)
	}
	rollupStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#EFEFEF"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating rollup style: %w", err)
	}
	numFmt := nairaFormat
	nairaStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("creating naira style: %w", err)
	}
	nairaRollupStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 10},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"#EFEFEF"}, Pattern: 1},
		Border:       thinBorders(),
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("creating naira rollup style: %w", err)
	}

	for i, h := range csvHeader {
		f.SetCellValue(ledgerSheet, fmt.Sprintf("%s1", columns[i]), h)
	}
	f.SetCellStyle(ledgerSheet, "A1", lastCol+"1", headerStyle)
	if err := f.SetPanes(ledgerSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freezing header row: %w", err)
	}

	for i, it := range items {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(ledgerSheet, "A"+row, yesNo(it.Done))
		f.SetCellValue(ledgerSheet, "B"+row, sanitizeCell(it.ID))
		f.SetCellValue(ledgerSheet, "C"+row, sanitizeCell(it.Description))
		f.SetCellValue(ledgerSheet, "D"+row, sanitizeCell(it.Event))
		f.SetCellValue(ledgerSheet, "E"+row, sanitizeCell(it.Type))
		f.SetCellValue(ledgerSheet, "F"+row, sanitizeCell(it.CostType))
		f.SetCellValue(ledgerSheet, "H"+row, notesCell(it))

		rowStyle := itemStyle
		costStyle := nairaStyle
		if it.IsRollup() {
			rowStyle = rollupStyle
			costStyle = nairaRollupStyle
		}
		f.SetCellStyle(ledgerSheet, "A"+row, lastCol+row, rowStyle)
		if it.Cost.Kind == model.CostAmount {
			f.SetCellValue(ledgerSheet, "G"+row, it.Cost.Amount)
			f.SetCellStyle(ledgerSheet, "G"+row, "G"+row, costStyle)
		} else {
			f.SetCellValue(ledgerSheet, "G"+row, costCell(it.Cost))
		}
	}

	if err := addSummarySheet(f, items); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func addSummarySheet(f *excelize.File, items []model.LineItem) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 28); err != nil {
		return fmt.Errorf("sizing summary column: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 18); err != nil {
		return fmt.Errorf("sizing summary column: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return fmt.Errorf("creating summary title style: %w", err)
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return fmt.Errorf("creating summary label style: %w", err)
	}

	metrics := pipeline.Aggregate(items)

	f.SetCellValue(summarySheet, "A1", "Ledger Summary")
	f.SetCellStyle(summarySheet, "A1", "A1", titleStyle)

	f.SetCellValue(summarySheet, "A3", "Total Confirmed Budget")
	f.SetCellValue(summarySheet, "B3", cli.FormatNaira(metrics.TotalConfirmed))
	f.SetCellValue(summarySheet, "A4", "Unpriced Items")
	f.SetCellValue(summarySheet, "B4", len(metrics.UnpricedItems))
	f.SetCellStyle(summarySheet, "A3", "A4", labelStyle)

	f.SetCellValue(summarySheet, "A6", "Top Cost Groupings")
	f.SetCellStyle(summarySheet, "A6", "A6", labelStyle)
	for i, pc := range metrics.TopGroupings {
		row := fmt.Sprintf("%d", 7+i)
		f.SetCellValue(summarySheet, "A"+row, pc.Phase)
		f.SetCellValue(summarySheet, "B"+row, cli.FormatNaira(pc.Total))
	}
	return nil
}

// sanitizeCell keeps text cells from being read back as formulas.
// Spreadsheet apps treat leading =, +, -, @, tab or pipe as executable.
func sanitizeCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
