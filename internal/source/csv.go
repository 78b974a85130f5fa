// Package source provides the ledger inputs: the built-in sample plus CSV
// and XLSX readers with header mapping.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"tally/internal/model"
)

// RowError describes a problem with one imported row. Rows with errors are
// still kept unless the message says otherwise; duplicate IDs are dropped.
type RowError struct {
	Row     int
	Field   string
	Message string
}

func (e RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	}
	return fmt.Sprintf("row %d, %s: %s", e.Row, e.Field, e.Message)
}

// ImportResult carries the parsed ledger plus anything worth telling the
// user about: columns that matched no field, and per-row problems.
type ImportResult struct {
	Items        []model.LineItem
	Unrecognized []string
	Errors       []RowError
}

// ParseCSV reads a ledger from CSV. The first row must be a header row.
func ParseCSV(r io.Reader, m Mapping) (*ImportResult, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("ledger needs a header row and at least one data row")
	}
	return parseRows(records[0], records[1:], m)
}

// ParseLedgerFile dispatches on the file extension.
func ParseLedgerFile(path string, m Mapping) (*ImportResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening ledger: %w", err)
		}
		defer func() { _ = f.Close() }()
		return ParseCSV(f, m)
	case ".xlsx":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening ledger: %w", err)
		}
		defer func() { _ = f.Close() }()
		return ParseXLSX(f, m)
	default:
		return nil, fmt.Errorf("unsupported ledger format %q: want .csv or .xlsx", filepath.Ext(path))
	}
}

// parseRows is shared by the CSV and XLSX readers once they have produced a
// header row and data rows.
func parseRows(header []string, rows [][]string, m Mapping) (*ImportResult, error) {
	fields := make([]string, len(header))
	res := &ImportResult{}
	matched := false
	for i, h := range header {
		fields[i] = m.fieldFor(h)
		if fields[i] == "" {
			if strings.TrimSpace(h) != "" {
				res.Unrecognized = append(res.Unrecognized, strings.TrimSpace(h))
			}
			continue
		}
		matched = true
	}
	if !matched {
		return nil, fmt.Errorf("no recognized columns in header row")
	}

	seen := make(map[string]int)
	for i, row := range rows {
		rowNum := i + 2 // 1-based, after the header
		if blankRow(row) {
			continue
		}
		it, errs := buildItem(rowNum, fields, row)
		res.Errors = append(res.Errors, errs...)
		if prev, dup := seen[it.ID]; dup {
			res.Errors = append(res.Errors, RowError{
				Row:     rowNum,
				Field:   "id",
				Message: fmt.Sprintf("duplicate of row %d, dropped", prev),
			})
			continue
		}
		seen[it.ID] = rowNum
		res.Items = append(res.Items, it)
	}
	if len(res.Items) == 0 {
		return nil, fmt.Errorf("no usable rows in ledger")
	}
	return res, nil
}

func buildItem(rowNum int, fields []string, row []string) (model.LineItem, []RowError) {
	var it model.LineItem
	var errs []RowError
	var notes, rawStatus, rawExclude, rawCost string

	for i, field := range fields {
		if field == "" || i >= len(row) {
			continue
		}
		val := strings.TrimSpace(row[i])
		switch field {
		case fieldCompleted:
			it.Done = parseBool(val)
		case fieldID:
			it.ID = val
		case fieldDescription:
			it.Description = val
		case fieldEvent:
			it.Event = val
		case fieldType:
			it.Type = val
		case fieldCostType:
			it.CostType = val
		case fieldCost:
			rawCost = val
		case fieldStatus:
			rawStatus = val
		case fieldExclude:
			rawExclude = val
		case fieldNotes:
			notes = val
		}
	}

	it.Cost = model.ParseCost(rawCost)
	if it.Cost.Kind == model.CostInvalid && rawCost != "" {
		// Blank cost cells are normal (our own exports write them for
		// invalid costs); only flag text that failed to parse.
		errs = append(errs, RowError{Row: rowNum, Field: "cost",
			Message: fmt.Sprintf("unparseable cost %q, kept as-is", rawCost)})
	}
	if it.ID == "" {
		it.ID = "item-" + uuid.NewString()[:8]
	}
	if it.Description == "" {
		errs = append(errs, RowError{Row: rowNum, Field: "description", Message: "empty"})
	}

	// Status comes from its own column when present. Otherwise our own
	// export marks unpriced rows in Notes, so honor that on the way back;
	// failing both, an N/A cost means the quote is still pending.
	switch {
	case rawStatus != "":
		it.Status = canonicalStatus(rawStatus)
	case strings.EqualFold(notes, "QUOTE NEEDED"):
		it.Status = model.StatusUnpriced
	case it.Cost.Kind == model.CostNA:
		it.Status = model.StatusUnpriced
	default:
		it.Status = model.StatusPriced
	}
	if it.CostType == "" && strings.EqualFold(notes, "SUMMARY LINE") {
		it.CostType = model.CostTypeSummary
	}
	if rawExclude != "" {
		it.ExcludeFromSum = parseBool(rawExclude)
	} else {
		it.ExcludeFromSum = it.IsRollup()
	}
	return it, errs
}

func canonicalStatus(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), model.StatusUnpriced) {
		return model.StatusUnpriced
	}
	return model.StatusPriced
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "x", "done":
		return true
	}
	return false
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
