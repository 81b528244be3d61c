package sand

import (
	"falling-sand/internal/core"

	"golang.org/x/sync/errgroup"
)

// clusterDensity is the chance that a cell inside a cluster brush is painted.
const clusterDensity = 0.2

// Sandbox is the falling-sand simulation: the grid, the parameter table and
// the tick-global state driven by Step.
//
// Step, the edit methods and the read methods must be called from one
// goroutine; Step fans out internally.
type Sandbox struct {
	cfg    Config
	grid   *Grid
	params ParamTable
	rng    *core.RNG

	// parity flips every tick and is combined with each particle's
	// direction bias to pick a side.
	parity int
	ticks  uint64
	// stamp tags the particles updated in the current tick. Zero is never
	// used, so freshly placed particles always count as not yet updated.
	stamp uint8

	chunks []Chunk
	colors []uint32
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *Sandbox {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options.
func NewWithConfig(cfg Config) *Sandbox {
	cfg = cfg.normalize()
	rng := core.NewRNG(cfg.Seed)
	return &Sandbox{
		cfg:    cfg,
		grid:   NewGrid(cfg.Width, cfg.Height, rng),
		params: cfg.Params,
		rng:    rng,
		parity: 1,
	}
}

// Name returns the simulation identifier.
func (s *Sandbox) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (s *Sandbox) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Config returns the effective configuration.
func (s *Sandbox) Config() Config { return s.cfg }

// Grid exposes the particle store for diagnostics.
func (s *Sandbox) Grid() *Grid { return s.grid }

// Ticks returns the number of completed Step calls since the last Reset.
func (s *Sandbox) Ticks() uint64 { return s.ticks }

// Parity returns the current tick parity, -1 or +1.
func (s *Sandbox) Parity() int { return s.parity }

// Reset reseeds the random source and empties the grid. A zero seed reuses
// the configured one.
func (s *Sandbox) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng.Seed(seed)
	s.grid.Clear(s.rng)
	s.parity = 1
	s.ticks = 0
	s.chunks = nil
}

// Step advances the simulation by one tick.
//
// Chunks are split by index parity. Every even chunk runs on its own
// goroutine, then every odd chunk, with a join between the two passes so
// concurrently running chunks never share a border column.
func (s *Sandbox) Step() {
	s.stamp++
	if s.stamp == 0 {
		s.stamp = 1
	}
	chunks := ColumnarChunks(s.grid.W, s.grid.H, s.cfg.Threads, s.cfg.ChunkOffset, s.rng)
	s.chunks = chunks

	for pass := 0; pass < 2; pass++ {
		var g errgroup.Group
		for i := pass; i < len(chunks); i += 2 {
			chunk := chunks[i]
			rng := core.NewRNG(s.rng.Int63())
			g.Go(func() error {
				s.processChunk(chunk, rng)
				return nil
			})
		}
		_ = g.Wait()
	}

	s.parity = -s.parity
	s.ticks++
}

func (s *Sandbox) processChunk(chunk Chunk, rng *core.RNG) {
	g := s.grid
	parity, stamp := s.parity, s.stamp
	chunk.visit(s.cfg.Scan, rng, func(x, y int) {
		p := &g.cells[g.Index(x, y)]
		// A particle that moved ahead of the scan was already updated.
		if p.Behavior == BehaviorNone || p.stamp == stamp {
			return
		}
		p.stamp = stamp
		c := newCursor(g, &s.params, rng, parity, x, y)
		update(&c)
	})
}

// LastChunks returns the chunk rectangles used by the most recent Step.
func (s *Sandbox) LastChunks() []core.Rect {
	out := make([]core.Rect, len(s.chunks))
	for i, c := range s.chunks {
		out[i] = c.Rect()
	}
	return out
}

// Place writes one particle at (x, y) if the cell is empty or species is
// Empty. Off-grid coordinates are ignored.
func (s *Sandbox) Place(species Species, x, y int) {
	s.grid.Set(x, y, species, s.rng)
}

// PlaceCluster scatters particles over the disk of the given radius around
// (x, y), each cell painted with a fixed probability.
func (s *Sandbox) PlaceCluster(species Species, x, y, radius int) {
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			if s.rng.Chance(clusterDensity) {
				s.Place(species, x+dx, y+dy)
			}
		}
	}
}

// Brush paints a cluster using the configured cluster radius.
func (s *Sandbox) Brush(species Species, x, y int) {
	s.PlaceCluster(species, x, y, s.cfg.ClusterRadius)
}

// Clear resets every cell to Empty.
func (s *Sandbox) Clear() {
	s.grid.Clear(s.rng)
}

// Query returns a snapshot of the particle at (x, y).
func (s *Sandbox) Query(x, y int) Particle {
	return s.grid.Get(x, y)
}

// Mass returns the number of non-empty cells.
func (s *Sandbox) Mass() int { return s.grid.Mass() }

// Count returns the number of cells holding species sp.
func (s *Sandbox) Count(sp Species) int { return s.grid.Count(sp) }

// Census counts cells per species.
func (s *Sandbox) Census() map[Species]int { return s.grid.Census() }

// ColorBuffer returns the packed 0xAARRGGBB colour of every cell, row-major.
// The slice is reused by the next call.
func (s *Sandbox) ColorBuffer() []uint32 {
	cells := s.grid.cells
	if len(s.colors) != len(cells) {
		s.colors = make([]uint32, len(cells))
	}
	for i := range cells {
		s.colors[i] = cells[i].Color
	}
	return s.colors
}
