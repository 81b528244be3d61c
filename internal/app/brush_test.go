package app

import (
	"testing"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

func TestBrushKeysCoverPlaceableSpecies(t *testing.T) {
	seen := map[sand.Species]bool{}
	for _, sp := range BrushKeys {
		seen[sp] = true
	}
	for _, sp := range sand.Placeable() {
		if !seen[sp] {
			t.Fatalf("no brush key for %v", sp)
		}
	}
	if BrushKeys['g'] != sand.Empty {
		t.Fatal("g should erase")
	}
}

func TestCellAt(t *testing.T) {
	size := core.Size{W: 10, H: 5}
	tests := []struct {
		px, py, scale int
		x, y          int
		ok            bool
	}{
		{0, 0, 2, 0, 0, true},
		{19, 9, 2, 9, 4, true},
		{20, 0, 2, 0, 0, false},
		{0, 10, 2, 0, 0, false},
		{-1, 3, 2, 0, 0, false},
		{7, 3, 0, 7, 3, true},
	}
	for _, tc := range tests {
		x, y, ok := CellAt(tc.px, tc.py, tc.scale, size)
		if ok != tc.ok || (ok && (x != tc.x || y != tc.y)) {
			t.Fatalf("CellAt(%d,%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tc.px, tc.py, tc.scale, x, y, ok, tc.x, tc.y, tc.ok)
		}
	}
}
