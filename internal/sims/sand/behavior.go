package sand

import "math"

// update runs one cell's transition for the current tick. It touches the grid
// only through the cursor.
func update(c *Cursor) {
	switch c.here.Behavior {
	case BehaviorSolid:
		updateSolid(c)
	case BehaviorLiquid:
		updateLiquid(c)
	case BehaviorGas:
		updateGas(c)
	case BehaviorFreeFall:
		updateFreeFall(c)
	}
}

// yieldsToSolid reports whether a solid can displace p.
func yieldsToSolid(p Particle) bool {
	return p.IsEmpty() || p.IsLiquid() || p.IsGas()
}

func updateSolid(c *Cursor) {
	if !c.here.Awake {
		below := c.Get(0, 1)
		if !yieldsToSolid(below) && !below.IsFalling() {
			return
		}
		c.Here().Awake = true
	}

	dir := c.Direction()
	moved := true
	below := c.Get(0, 1)
	switch {
	case below.IsEmpty():
		c.Swap(0, 1)
		c.Here().BeginFalling()
	case below.IsLiquid() || below.IsGas():
		c.Swap(0, 1)
	case yieldsToSolid(c.Get(dir, 1)):
		c.Swap(dir, 1)
	case yieldsToSolid(c.Get(-dir, 1)):
		c.Swap(-dir, 1)
	default:
		moved = false
		if c.Chance(c.Params().Resistance) {
			c.Here().Awake = false
		}
	}

	if moved {
		c.Wake(1, 0)
		c.Wake(-1, 0)
	}
}

// sinksInto reports whether a liquid with params p may move down into
// target: empty and gas always give way, liquids only when lighter.
func sinksInto(target Particle, targetParams, p ParticleParams) bool {
	if target.IsEmpty() || target.IsGas() {
		return true
	}
	return target.IsLiquid() && targetParams.Density < p.Density
}

func updateLiquid(c *Cursor) {
	p := c.Params()
	dir := c.Direction()

	if sinksInto(c.Get(0, 1), c.ParamsAt(0, 1), p) {
		c.Swap(0, 1)
		return
	}
	if sinksInto(c.Get(dir, 1), c.ParamsAt(dir, 1), p) {
		c.Swap(dir, 1)
		return
	}

	moved := false
	for i := 0; i < p.SpreadVelocity; i++ {
		side := c.Get(dir, 0)
		if !side.IsEmpty() && !(side.IsLiquid() && side.Species != c.here.Species) {
			break
		}
		if !c.Get(-dir, 1).IsLiquid() && !c.Chance(p.Viscosity) {
			break
		}
		c.Swap(dir, 0)
		moved = true
	}

	if !moved && c.Get(0, -1).IsEmpty() && c.Chance(p.FluidShimmer) {
		c.Swap(0, -1)
	}
}

func updateGas(c *Cursor) {
	p := c.Params()
	if c.Chance(p.Volatility) {
		*c.Here() = NewParticle(Empty, c.rng)
		return
	}

	dir := c.parity
	if c.Get(0, -1).IsEmpty() && c.Chance(p.VerticalAffinity) {
		c.Swap(0, -1)
	} else if c.Get(dir, 0).IsEmpty() && c.Chance(p.HorizontalAffinity) {
		c.Swap(dir, 0)
	}
}

func updateFreeFall(c *Cursor) {
	p := c.Params()
	here := c.Here()
	here.Vy = clamp32(here.Vy+p.Gravity, p.MinimalVelocity, p.TerminalVelocity)
	vx, vy := here.Vx, here.Vy

	moved, landed := false, false
	lineTrace(c.X, c.Y, c.X+roundInt(vx), c.Y+roundInt(vy), func(nx, ny int) bool {
		dx, dy := nx-c.X, ny-c.Y
		if dx == 0 && dy == 0 {
			return true
		}
		target := c.Get(dx, dy)
		switch {
		case target.IsEmpty():
			c.Swap(dx, dy)
			moved = true
			return true
		case target.IsFalling():
			// Momentum hand-off: the particle in the way inherits our
			// velocity and the trace goes on past it.
			if t := c.At(dx, dy); t != nil {
				t.Vx, t.Vy = vx, vy
			}
			return true
		default:
			land(c, p, vy)
			landed = true
			return false
		}
	})

	if !moved && !landed {
		c.Here().StopFalling()
	}
}

// land ends a fall. Fast impacts convert part of the vertical speed into
// sideways velocity.
func land(c *Cursor, p ParticleParams, speed float32) {
	here := c.Here()
	if speed > p.SpeedToBounce {
		here.Vx = speed * p.HorizontalTransfer * float32(c.rng.Float64()) * float32(c.Direction())
	} else {
		here.Vx = 0
	}
	here.StopFalling()
}

func clamp32(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundInt(v float32) int {
	return int(math.Round(float64(v)))
}
