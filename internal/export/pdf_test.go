package export

import (
	"testing"

	"tally/internal/source"
)

func TestPDF(t *testing.T) {
	b, err := PDF(source.Sample())
	if err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	if len(b) == 0 {
		t.Fatal("PDF() returned empty bytes")
	}
	if string(b[:5]) != "%PDF-" {
		t.Errorf("output does not start with a PDF header, got %q", string(b[:5]))
	}
}

func TestPDFEmptyLedger(t *testing.T) {
	b, err := PDF(nil)
	if err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	if len(b) == 0 {
		t.Fatal("PDF() returned empty bytes")
	}
}
