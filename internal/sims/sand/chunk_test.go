package sand

import (
	"testing"

	"falling-sand/internal/core"
)

func TestColumnarChunksCoverGrid(t *testing.T) {
	cases := []struct {
		w, count, offset int
		wantChunks       int
	}{
		{w: 400, count: 20, offset: 10, wantChunks: 20},
		{w: 100, count: 3, offset: 5, wantChunks: 3},
		{w: 10, count: 4, offset: 0, wantChunks: 4},
		{w: 7, count: 1, offset: 3, wantChunks: 1},
		{w: 5, count: 9, offset: 2, wantChunks: 5},
		{w: 12, count: 0, offset: 4, wantChunks: 1},
		{w: 12, count: -3, offset: 0, wantChunks: 1},
		{w: 16, count: 4, offset: 100, wantChunks: 4},
	}
	rng := core.NewRNG(11)
	for _, tc := range cases {
		for trial := 0; trial < 20; trial++ {
			chunks := ColumnarChunks(tc.w, 8, tc.count, tc.offset, rng)
			if len(chunks) != tc.wantChunks {
				t.Fatalf("w=%d count=%d: got %d chunks, want %d", tc.w, tc.count, len(chunks), tc.wantChunks)
			}
			next := 0
			for i, c := range chunks {
				if c.XMin != next {
					t.Fatalf("w=%d count=%d: chunk %d starts at %d, want %d", tc.w, tc.count, i, c.XMin, next)
				}
				if c.Width() <= 0 {
					t.Fatalf("w=%d count=%d: chunk %d is empty", tc.w, tc.count, i)
				}
				if c.YMin != 0 || c.YMax != 8 {
					t.Fatalf("chunk %d should span the full height, got [%d,%d)", i, c.YMin, c.YMax)
				}
				next = c.XMax
			}
			if next != tc.w {
				t.Fatalf("w=%d count=%d: last chunk ends at %d", tc.w, tc.count, next)
			}
		}
	}
}

func TestColumnarChunksBordersShift(t *testing.T) {
	rng := core.NewRNG(5)
	seen := map[int]bool{}
	for i := 0; i < 50; i++ {
		chunks := ColumnarChunks(200, 10, 10, 10, rng)
		seen[chunks[0].XMax] = true
	}
	if len(seen) < 2 {
		t.Fatal("chunk borders should move between ticks")
	}
	for border := range seen {
		if border <= 10 || border > 20 {
			t.Fatalf("first border %d outside (10,20]", border)
		}
	}
}

func TestColumnarChunksDegenerateGrid(t *testing.T) {
	if got := ColumnarChunks(0, 10, 4, 2, core.NewRNG(1)); got != nil {
		t.Fatalf("expected no chunks for zero width, got %v", got)
	}
}
