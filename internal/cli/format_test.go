package cli

import (
	"testing"

	"tally/internal/model"
)

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "₦0"},
		{"small", 42, "₦42"},
		{"three digits", 999, "₦999"},
		{"thousand", 1000, "₦1,000"},
		{"big", 1234567, "₦1,234,567"},
		{"decimal kept", 12345.5, "₦12,345.5"},
		{"cents kept", 0.25, "₦0.25"},
		{"no padding added", 1500.75, "₦1,500.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNaira(tt.in); got != tt.want {
				t.Errorf("FormatNaira(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		name string
		cost model.Cost
		want string
	}{
		{"sentinel passes through", model.NA(), "N/A"},
		{"invalid renders error", model.ParseCost("abc"), "Error"},
		{"amount grouped", model.Naira(1000), "₦1,000"},
		{"zero amount", model.Naira(0), "₦0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCost(tt.cost); got != tt.want {
				t.Errorf("FormatCost(%v) = %q, want %q", tt.cost, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten chars", 17, "exactly ten chars"},
		{"a long description that keeps going", 12, "a long desc…"},
		{"anything", 0, ""},
		{"ab", 1, "…"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
