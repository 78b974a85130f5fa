package source

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field keys a mapping file may bind headers to.
const (
	fieldCompleted   = "completed"
	fieldID          = "id"
	fieldDescription = "description"
	fieldEvent       = "event_phase"
	fieldType        = "type"
	fieldCostType    = "cost_type"
	fieldCost        = "cost"
	fieldStatus      = "status"
	fieldExclude     = "exclude_from_sum"
	fieldNotes       = "notes"
)

var knownFields = map[string]bool{
	fieldCompleted:   true,
	fieldID:          true,
	fieldDescription: true,
	fieldEvent:       true,
	fieldType:        true,
	fieldCostType:    true,
	fieldCost:        true,
	fieldStatus:      true,
	fieldExclude:     true,
	fieldNotes:       true,
}

// defaultHeaders binds common header spellings to field keys. Lookup happens
// after normalizeHeader, so keys here are already normalized.
var defaultHeaders = map[string]string{
	"completed":        fieldCompleted,
	"done":             fieldCompleted,
	"id":               fieldID,
	"item id":          fieldID,
	"ref":              fieldID,
	"description":      fieldDescription,
	"item":             fieldDescription,
	"line item":        fieldDescription,
	"event phase":      fieldEvent,
	"event":            fieldEvent,
	"phase":            fieldEvent,
	"type":             fieldType,
	"category":         fieldType,
	"cost type":        fieldCostType,
	"projected cost":   fieldCost,
	"cost":             fieldCost,
	"amount":           fieldCost,
	"status":           fieldStatus,
	"exclude from sum": fieldExclude,
	"excluded":         fieldExclude,
	"notes":            fieldNotes,
}

// Mapping overrides how ledger column headers bind to item fields. Keys are
// header texts as they appear in the file, values are field keys.
type Mapping struct {
	Columns map[string]string `yaml:"columns"`
}

// LoadMapping reads a YAML mapping file and validates its field keys.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Mapping{}, fmt.Errorf("reading mapping file: %w", err)
	}
	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Mapping{}, fmt.Errorf("parsing mapping file: %w", err)
	}
	for header, field := range m.Columns {
		if !knownFields[field] {
			return Mapping{}, fmt.Errorf("mapping for column %q: unknown field %q", header, field)
		}
	}
	return m, nil
}

// fieldFor resolves a raw header cell to a field key, or "" when the column
// is not recognized. User overrides win over the built-in bindings.
func (m Mapping) fieldFor(header string) string {
	norm := normalizeHeader(header)
	for h, f := range m.Columns {
		if normalizeHeader(h) == norm {
			return f
		}
	}
	return defaultHeaders[norm]
}

// normalizeHeader lowercases, trims, and strips a trailing required-field
// marker so "Projected Cost *" and "projected cost" compare equal.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.TrimSuffix(h, " *")
	return strings.Join(strings.Fields(h), " ")
}
