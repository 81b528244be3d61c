package sand

import "falling-sand/internal/core"

type tint struct {
	r, g, b  uint8
	variance int
}

var speciesTints = [NumSpecies]tint{
	Empty:  {210, 220, 230, 5},
	Sand:   {240, 220, 130, 15},
	Water:  {166, 214, 214, 20},
	Stone:  {190, 190, 200, 10},
	Smoke:  {30, 30, 30, 25},
	Gravel: {140, 130, 120, 20},
	Wood:   {120, 80, 45, 10},
	Oil:    {70, 50, 30, 10},
}

func speciesColor(s Species, rng *core.RNG) uint32 {
	if s == OutOfBounds || int(s) >= NumSpecies {
		return outOfBounds.Color
	}
	t := speciesTints[s]
	return colorNear(t.r, t.g, t.b, t.variance, rng)
}

// colorNear jitters each channel of (r, g, b) by up to variance and packs the
// result as opaque 0xAARRGGBB.
func colorNear(r, g, b uint8, variance int, rng *core.RNG) uint32 {
	jitter := func(base uint8) uint32 {
		v := int(base)
		if variance > 0 {
			v += rng.IntN(2*variance+1) - variance
		}
		return uint32(min(max(v, 0), 255))
	}
	return 0xff<<24 | jitter(r)<<16 | jitter(g)<<8 | jitter(b)
}

// Pack builds an opaque 0xAARRGGBB value.
func Pack(r, g, b uint8) uint32 {
	return 0xff<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

var (
	debugEmpty    = Pack(16, 16, 20)
	debugStatic   = Pack(90, 90, 100)
	debugAwake    = Pack(250, 210, 60)
	debugAsleep   = Pack(110, 90, 40)
	debugLiquid   = Pack(40, 120, 230)
	debugGas      = Pack(170, 170, 170)
	debugFreeFall = Pack(230, 50, 50)
)

// DebugBuffer colours every cell by its behavior instead of its species:
// awake and sleeping solids, liquids, gases and free-falling cells are each
// shown in a flat colour.
func (s *Sandbox) DebugBuffer() []uint32 {
	cells := s.grid.cells
	out := make([]uint32, len(cells))
	for i := range cells {
		out[i] = debugColor(cells[i])
	}
	return out
}

func debugColor(p Particle) uint32 {
	switch p.Behavior {
	case BehaviorSolid:
		if p.Awake {
			return debugAwake
		}
		return debugAsleep
	case BehaviorLiquid:
		return debugLiquid
	case BehaviorGas:
		return debugGas
	case BehaviorFreeFall:
		return debugFreeFall
	}
	if p.IsEmpty() {
		return debugEmpty
	}
	return debugStatic
}

// SleepingMask marks the solids that have come to rest and are skipped until
// a neighbour wakes them.
func (s *Sandbox) SleepingMask() []bool {
	cells := s.grid.cells
	out := make([]bool, len(cells))
	for i := range cells {
		out[i] = cells[i].IsSolid() && !cells[i].Awake
	}
	return out
}
