// Package export renders a ledger to CSV, XLSX, and PDF.
package export

import (
	"strconv"
	"strings"

	"tally/internal/model"
)

// Columns every CSV export carries, in order.
var csvHeader = [...]string{
	"Completed", "ID", "Description", "Event Phase",
	"Type", "Cost Type", "Projected Cost", "Notes",
}

// CSV renders the ledger with every field quoted and embedded quotes
// doubled. The stdlib csv writer quotes only when forced to, and the
// spreadsheet tooling these exports feed expects uniform quoting.
func CSV(items []model.LineItem) string {
	var b strings.Builder
	writeRecord(&b, csvHeader[:])
	for _, it := range items {
		writeRecord(&b, []string{
			yesNo(it.Done),
			it.ID,
			it.Description,
			it.Event,
			it.Type,
			it.CostType,
			costCell(it.Cost),
			notesCell(it),
		})
	}
	return b.String()
}

func writeRecord(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func costCell(c model.Cost) string {
	switch c.Kind {
	case model.CostNA:
		return "N/A"
	case model.CostAmount:
		return strconv.FormatFloat(c.Amount, 'f', -1, 64)
	default:
		return ""
	}
}

// notesCell flags rows that need attention downstream. A missing quote
// outranks the summary marker when both would apply.
func notesCell(it model.LineItem) string {
	switch {
	case it.Status == model.StatusUnpriced:
		return "QUOTE NEEDED"
	case it.CostType == model.CostTypeSummary:
		return "SUMMARY LINE"
	}
	return ""
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
