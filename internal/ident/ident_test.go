package ident

import "testing"

func TestTablesAreSortedPairs(t *testing.T) {
	for name, table := range map[string][]uint32{
		"start": idStartTable[:],
		"part":  idPartTable[:],
	} {
		if len(table)%2 != 0 {
			t.Fatalf("%s: odd table length %d", name, len(table))
		}
		for i := 0; i < len(table); i += 2 {
			if table[i] > table[i+1] {
				t.Fatalf("%s: range %d inverted: %d > %d", name, i/2, table[i], table[i+1])
			}
			if i > 0 && table[i] <= table[i-1] {
				t.Fatalf("%s: range %d overlaps previous: %d <= %d", name, i/2, table[i], table[i-1])
			}
		}
	}
}

func linearLookup(code uint32, table []uint32) bool {
	for i := 0; i < len(table); i += 2 {
		if table[i] <= code && code <= table[i+1] {
			return true
		}
	}
	return false
}

func TestLookupMatchesLinearScan(t *testing.T) {
	probe := func(code uint32) {
		if got, want := lookup(code, idStartTable[:]), linearLookup(code, idStartTable[:]); got != want {
			t.Fatalf("start lookup(%#x) = %v, want %v", code, got, want)
		}
		if got, want := lookup(code, idPartTable[:]), linearLookup(code, idPartTable[:]); got != want {
			t.Fatalf("part lookup(%#x) = %v, want %v", code, got, want)
		}
	}
	for code := uint32(0); code < 0x3000; code++ {
		probe(code)
	}
	// every range boundary and its neighbours
	for _, table := range [][]uint32{idStartTable[:], idPartTable[:]} {
		for _, v := range table {
			probe(v - 1)
			probe(v)
			probe(v + 1)
		}
	}
}

func TestIsIDStart(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'0', false},
		{'_', false},
		{'$', false},
		{' ', false},
		{'é', true},
		{'π', true},
		{'中', true},
		{'\u0300', false}, // combining grave accent
		{'\U0001D400', true},
		{-1, false},
		{0x10FFFF, false},
	}
	for _, tt := range tests {
		if got := IsIDStart(tt.r); got != tt.want {
			t.Errorf("IsIDStart(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsIDPart(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'9', true},
		{'_', true},
		{'$', false},
		{'-', false},
		{'\u0300', true},
		{'·', true},
		{'\u200c', false},
		{0xE0100, true},
	}
	for _, tt := range tests {
		if got := IsIDPart(tt.r); got != tt.want {
			t.Errorf("IsIDPart(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsIdent(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"a", true},
		{"foo_bar9", true},
		{"9lives", false},
		{"_x", false},
		{"naïve", true},
		{"x\u0301", true},
		{"a-b", false},
		{"变量", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsIdent(tt.in); got != tt.want {
				t.Errorf("IsIdent(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
