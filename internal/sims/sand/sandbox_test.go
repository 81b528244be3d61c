package sand

import (
	"testing"

	"falling-sand/internal/core"
)

// scatter fills the upper part of the grid with a mix of non-gas species over
// a stone floor.
func scatter(s *Sandbox, seed int64) {
	rng := core.NewRNG(seed)
	size := s.Size()
	fillRow(s, size.H-1, Stone)
	kinds := []Species{Sand, Water, Gravel, Oil, Stone, Empty, Empty}
	for y := 0; y < size.H/2; y++ {
		for x := 0; x < size.W; x++ {
			s.Place(kinds[rng.IntN(len(kinds))], x, y)
		}
	}
}

func TestStepConservesMassSingleThread(t *testing.T) {
	for _, order := range []ScanOrder{ScanZigZag, ScanCoprime, ScanShuffled} {
		s := newTestSandbox(48, 32, func(c *Config) { c.Scan = order })
		scatter(s, 3)
		before := s.Census()

		for i := 0; i < 120; i++ {
			s.Step()
		}

		after := s.Census()
		for _, sp := range []Species{Sand, Water, Gravel, Oil, Stone} {
			if before[sp] != after[sp] {
				t.Fatalf("%v: %v count changed %d -> %d", order, sp, before[sp], after[sp])
			}
		}
	}
}

func TestStepAccountsForGasDecay(t *testing.T) {
	s := newTestSandbox(20, 20, func(c *Config) {
		c.Params[Smoke].Volatility = 0.2
	})
	fillRow(s, 19, Stone)
	for x := 0; x < 20; x++ {
		s.Place(Smoke, x, 18)
		s.Place(Sand, x, 0)
	}
	solidBefore := s.Count(Sand) + s.Count(Stone)
	smokeBefore := s.Count(Smoke)

	prevSmoke := smokeBefore
	for i := 0; i < 30; i++ {
		s.Step()
		smoke := s.Count(Smoke)
		if smoke > prevSmoke {
			t.Fatalf("tick %d: smoke grew from %d to %d", i, prevSmoke, smoke)
		}
		prevSmoke = smoke
		if got := s.Count(Sand) + s.Count(Stone); got != solidBefore {
			t.Fatalf("tick %d: solid mass %d, want %d", i, got, solidBefore)
		}
		if s.Mass() != solidBefore+smoke {
			t.Fatalf("tick %d: mass %d does not equal solids %d plus smoke %d", i, s.Mass(), solidBefore, smoke)
		}
	}
	if prevSmoke == smokeBefore {
		t.Fatal("expected some smoke to decay")
	}
}

func TestStepAdvancesTickState(t *testing.T) {
	s := newTestSandbox(8, 8, nil)
	if s.Parity() != 1 || s.Ticks() != 0 {
		t.Fatalf("fresh sandbox parity=%d ticks=%d", s.Parity(), s.Ticks())
	}
	s.Step()
	if s.Parity() != -1 || s.Ticks() != 1 {
		t.Fatalf("after one step parity=%d ticks=%d", s.Parity(), s.Ticks())
	}
	s.Step()
	if s.Parity() != 1 || s.Ticks() != 2 {
		t.Fatalf("after two steps parity=%d ticks=%d", s.Parity(), s.Ticks())
	}

	s.Place(Sand, 1, 1)
	s.Reset(0)
	if s.Ticks() != 0 || s.Parity() != 1 || s.Mass() != 0 {
		t.Fatal("Reset should clear the grid and tick state")
	}
}

func TestZeroThreadsIsClamped(t *testing.T) {
	s := newTestSandbox(6, 6, func(c *Config) {
		c.Threads = 0
		c.ChunkOffset = -4
	})
	s.Place(Sand, 3, 0)
	s.Step()
	if got := len(s.LastChunks()); got != 1 {
		t.Fatalf("expected a single chunk, got %d", got)
	}
	if s.Mass() != 1 {
		t.Fatalf("mass = %d, want 1", s.Mass())
	}
}

func TestLastChunksMatchThreads(t *testing.T) {
	s := newTestSandbox(64, 8, func(c *Config) {
		c.Threads = 4
		c.ChunkOffset = 6
	})
	s.Step()
	rects := s.LastChunks()
	if len(rects) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(rects))
	}
	if rects[0].X0 != 0 || rects[3].X1 != 64 {
		t.Fatalf("chunks do not span the grid: %+v", rects)
	}
}

func TestPlaceClusterStaysInsideRadius(t *testing.T) {
	s := newTestSandbox(41, 41, nil)
	disk := 0
	for dy := -6; dy <= 6; dy++ {
		for dx := -6; dx <= 6; dx++ {
			if dx*dx+dy*dy <= 36 {
				disk++
			}
		}
	}

	s.PlaceCluster(Sand, 20, 20, 6)
	if n := s.Mass(); n == 0 || n >= disk {
		t.Fatalf("one cluster placed %d of %d disk cells, want a sparse fill", n, disk)
	}

	for i := 0; i < 20; i++ {
		s.PlaceCluster(Sand, 20, 20, 6)
	}
	for y := 0; y < 41; y++ {
		for x := 0; x < 41; x++ {
			if s.Query(x, y).IsEmpty() {
				continue
			}
			dx, dy := x-20, y-20
			if dx*dx+dy*dy > 36 {
				t.Fatalf("particle at (%d,%d) outside radius", x, y)
			}
		}
	}

	s.PlaceCluster(Water, -100, -100, 3)
	if s.Count(Water) != 0 {
		t.Fatal("off-grid cluster should place nothing")
	}
}

func TestClusterEraseWithEmpty(t *testing.T) {
	s := newTestSandbox(11, 11, nil)
	for y := 0; y < 11; y++ {
		fillRow(s, y, Stone)
	}
	before := s.Mass()
	for i := 0; i < 30; i++ {
		s.PlaceCluster(Empty, 5, 5, 3)
	}
	if s.Mass() >= before {
		t.Fatal("placing Empty clusters should erase matter")
	}
}

func TestClearEmptiesGrid(t *testing.T) {
	s := newTestSandbox(10, 10, nil)
	scatter(s, 1)
	s.Clear()
	if s.Mass() != 0 {
		t.Fatalf("mass after clear = %d", s.Mass())
	}
}

func TestColorBufferMatchesCells(t *testing.T) {
	s := newTestSandbox(6, 4, nil)
	s.Place(Sand, 1, 1)
	s.Place(Water, 4, 3)
	buf := s.ColorBuffer()
	if len(buf) != 24 {
		t.Fatalf("buffer length %d, want 24", len(buf))
	}
	for i, p := range s.Grid().Cells() {
		if buf[i] != p.Color {
			t.Fatalf("pixel %d = %#x, want %#x", i, buf[i], p.Color)
		}
		if buf[i]>>24 != 0xff {
			t.Fatalf("pixel %d not opaque: %#x", i, buf[i])
		}
	}
}

func TestQueryReturnsSnapshot(t *testing.T) {
	s := newTestSandbox(4, 4, nil)
	s.Place(Gravel, 2, 2)
	p := s.Query(2, 2)
	p.Species = Water
	if s.Query(2, 2).Species != Gravel {
		t.Fatal("mutating a query result must not change the grid")
	}
	if s.Query(9, 9).Species != OutOfBounds {
		t.Fatal("off-grid query should return the sentinel")
	}
}

func TestSandboxSatisfiesSim(t *testing.T) {
	var _ core.Sim = (*Sandbox)(nil)
	var _ core.Chunked = (*Sandbox)(nil)
	var _ core.ParameterProvider = (*Sandbox)(nil)
	var _ core.IntParameterSetter = (*Sandbox)(nil)
}
