package sand

import "falling-sand/internal/core"

// Cursor is the update context of one cell for one behavior call. It follows
// its particle: after Swap, every relative accessor is measured from the new
// position. A Cursor must not outlive the update it was built for.
type Cursor struct {
	X, Y int

	// here is the particle observed when the cursor was created. Swap
	// refreshes it.
	here Particle

	grid   *Grid
	params *ParamTable
	rng    *core.RNG
	parity int
}

func newCursor(g *Grid, params *ParamTable, rng *core.RNG, parity, x, y int) Cursor {
	return Cursor{X: x, Y: y, here: g.Get(x, y), grid: g, params: params, rng: rng, parity: parity}
}

// Observed returns the particle cached at creation or last swap.
func (c *Cursor) Observed() Particle { return c.here }

// Here returns a live pointer to the cursor's current cell.
func (c *Cursor) Here() *Particle {
	return c.grid.At(c.X, c.Y)
}

// Get returns the particle at offset (dx, dy).
func (c *Cursor) Get(dx, dy int) Particle {
	return c.grid.Get(c.X+dx, c.Y+dy)
}

// At returns a live pointer to the cell at offset (dx, dy), nil off-grid.
func (c *Cursor) At(dx, dy int) *Particle {
	return c.grid.At(c.X+dx, c.Y+dy)
}

// Params returns the parameters of the particle under the cursor.
func (c *Cursor) Params() ParticleParams {
	return c.params.For(c.here.Species)
}

// ParamsAt returns the parameters of the particle at offset (dx, dy).
func (c *Cursor) ParamsAt(dx, dy int) ParticleParams {
	return c.params.For(c.Get(dx, dy).Species)
}

// Swap exchanges the cursor's cell with the one at (dx, dy) and moves the
// cursor along. Swapping off-grid is a no-op.
func (c *Cursor) Swap(dx, dy int) {
	nx, ny := c.X+dx, c.Y+dy
	if !c.grid.InBounds(nx, ny) || !c.grid.InBounds(c.X, c.Y) {
		return
	}
	c.grid.Swap(c.grid.Index(c.X, c.Y), c.grid.Index(nx, ny))
	c.X, c.Y = nx, ny
	c.here = c.grid.cells[c.grid.Index(nx, ny)]
}

// Direction combines the tick parity with the particle's own bias into -1 or
// +1.
func (c *Cursor) Direction() int {
	if c.here.DirectionBias {
		return c.parity
	}
	return -c.parity
}

// Chance reports true with probability p.
func (c *Cursor) Chance(p float64) bool { return c.rng.Chance(p) }

// Wake marks the solids at (dx, dy) awake.
func (c *Cursor) Wake(dx, dy int) {
	if p := c.At(dx, dy); p != nil {
		p.Awake = true
	}
}
