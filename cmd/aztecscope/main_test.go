package main

import (
	"testing"

	"github.com/barcodelab/aztecscope/symbol"
)

func TestParseCorners(t *testing.T) {
	got, err := parseCorners("0,0, 120,0, 120,120, 0,120")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got[1].X != 120 || got[1].Y != 0 || got[3].X != 0 || got[3].Y != 120 {
		t.Errorf("corners = %+v", got)
	}

	for _, bad := range []string{"", "1,2,3", "a,0,1,0,1,1,0,1", "1,2,3,4,5,6,7"} {
		if _, err := parseCorners(bad); err == nil {
			t.Errorf("parseCorners(%q) accepted", bad)
		}
	}
}

func TestSymbolKindAndDetail(t *testing.T) {
	tests := []struct {
		sym    symbol.Symbol
		kind   string
		detail string
	}{
		{symbol.Character{Mode: symbol.Upper, Text: "A"}, "char", "UPPER"},
		{symbol.Shift{From: symbol.Upper, To: symbol.Punct}, "shift", "UPPER>PUNCT"},
		{symbol.Latch{From: symbol.Upper, To: symbol.Digit}, "latch", "UPPER>DIGIT"},
		{symbol.BinaryShift{Length: 4}, "bin-shift", "4 bytes"},
		{symbol.Flag{N: 2, ECI: 26}, "flag", "FLG(2) ECI 26"},
		{symbol.Flag{N: 0, ECI: -1}, "flag", "FLG(0)"},
		{symbol.ECC{}, "ecc", ""},
	}
	for _, tc := range tests {
		if got := symbolKind(tc.sym); got != tc.kind {
			t.Errorf("symbolKind(%T) = %q, want %q", tc.sym, got, tc.kind)
		}
		if got := symbolDetail(tc.sym); got != tc.detail {
			t.Errorf("symbolDetail(%T) = %q, want %q", tc.sym, got, tc.detail)
		}
	}
}
