package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMapping(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing mapping: %v", err)
	}
	return path
}

func TestLoadMapping(t *testing.T) {
	path := writeMapping(t, `columns:
  "Line Description": description
  "Quoted Price": cost
  "Stage": event_phase
`)
	m, err := LoadMapping(path)
	if err != nil {
		t.Fatalf("LoadMapping() error = %v", err)
	}
	if got := m.fieldFor("Line Description"); got != fieldDescription {
		t.Errorf("fieldFor(Line Description) = %q", got)
	}
	if got := m.fieldFor("quoted price"); got != fieldCost {
		t.Errorf("fieldFor(quoted price) = %q, want case-insensitive match", got)
	}
}

func TestLoadMappingUnknownField(t *testing.T) {
	path := writeMapping(t, `columns:
  "Vendor": supplier_name
`)
	if _, err := LoadMapping(path); err == nil {
		t.Error("LoadMapping() error = nil, want unknown field error")
	}
}

func TestLoadMappingMissingFile(t *testing.T) {
	if _, err := LoadMapping(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadMapping() error = nil, want error")
	}
}

func TestFieldForNormalization(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Projected Cost", fieldCost},
		{"  projected   cost  ", fieldCost},
		{"Projected Cost *", fieldCost},
		{"EVENT PHASE", fieldEvent},
		{"Vendor Contact", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := (Mapping{}).fieldFor(tc.header); got != tc.want {
			t.Errorf("fieldFor(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
