package sand

import "falling-sand/internal/core"

// Grid is the flat row-major particle store.
//
// A single *Grid is shared by every worker goroutine of a tick without any
// locking. Each worker writes the cells of its own chunk plus a small halo
// around it; chunks running concurrently are separated by an idle chunk, so
// overlapping writes are rare but possible. A lost or duplicated particle at a
// chunk border is an accepted outcome.
type Grid struct {
	W, H  int
	cells []Particle
}

// NewGrid allocates an empty grid. Non-positive dimensions are clamped to 1.
func NewGrid(w, h int, rng *core.RNG) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{W: w, H: h, cells: make([]Particle, w*h)}
	g.Clear(rng)
	return g
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return g.W*y + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Cells exposes the backing slice.
func (g *Grid) Cells() []Particle { return g.cells }

// Get returns a copy of the particle at (x, y), or the OutOfBounds sentinel.
func (g *Grid) Get(x, y int) Particle {
	if !g.InBounds(x, y) {
		return outOfBounds
	}
	return g.cells[g.Index(x, y)]
}

// At returns a live pointer to the cell at (x, y), or nil when off-grid.
func (g *Grid) At(x, y int) *Particle {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// Swap exchanges the contents of two cells. Both indices must be in bounds.
func (g *Grid) Swap(a, b int) {
	g.cells[a], g.cells[b] = g.cells[b], g.cells[a]
}

// Set writes a fresh particle of species s at (x, y) when the cell is empty
// or s is Empty. Off-grid writes are ignored.
func (g *Grid) Set(x, y int, s Species, rng *core.RNG) {
	if !g.InBounds(x, y) || s == OutOfBounds {
		return
	}
	idx := g.Index(x, y)
	if g.cells[idx].IsEmpty() || s == Empty {
		g.cells[idx] = NewParticle(s, rng)
	}
}

// Clear resets every cell to Empty.
func (g *Grid) Clear(rng *core.RNG) {
	for i := range g.cells {
		g.cells[i] = NewParticle(Empty, rng)
	}
}

// Count returns the number of cells holding species s.
func (g *Grid) Count(s Species) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Species == s {
			n++
		}
	}
	return n
}

// Mass returns the number of non-empty cells.
func (g *Grid) Mass() int {
	return len(g.cells) - g.Count(Empty)
}

// Census counts cells per species, omitting species with no cells.
func (g *Grid) Census() map[Species]int {
	out := make(map[Species]int)
	for i := range g.cells {
		out[g.cells[i].Species]++
	}
	return out
}
