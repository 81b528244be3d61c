package sand

import (
	"fmt"

	"falling-sand/internal/core"
)

// Particle is the content of one grid cell.
type Particle struct {
	Species  Species
	Behavior Behavior
	// Color is presentation only, packed 0xAARRGGBB.
	Color uint32
	Vx    float32
	Vy    float32
	// Awake is only meaningful for solids: a sleeping solid skips its
	// update until the cell below opens up or a neighbor wakes it.
	Awake bool
	// DirectionBias is fixed at creation and breaks left/right symmetry.
	DirectionBias bool

	// stamp records the last tick this particle was updated in.
	stamp uint8
}

var outOfBounds = Particle{
	Species:  OutOfBounds,
	Behavior: BehaviorSolid,
	Color:    0xffff00ff,
}

// NewParticle builds a fresh particle of species s.
func NewParticle(s Species, rng *core.RNG) Particle {
	return Particle{
		Species:       s,
		Behavior:      BaseBehavior(s),
		Color:         speciesColor(s, rng),
		Awake:         true,
		DirectionBias: rng.Bool(),
	}
}

func (p Particle) IsEmpty() bool   { return p.Species == Empty }
func (p Particle) IsSolid() bool   { return p.Behavior == BehaviorSolid }
func (p Particle) IsLiquid() bool  { return p.Behavior == BehaviorLiquid }
func (p Particle) IsGas() bool     { return p.Behavior == BehaviorGas }
func (p Particle) IsFalling() bool { return p.Behavior == BehaviorFreeFall }

// BeginFalling switches the particle into free fall.
func (p *Particle) BeginFalling() {
	p.Behavior = BehaviorFreeFall
	p.Awake = true
}

// StopFalling reverts to the species' base behavior and drops vertical
// velocity. Horizontal velocity survives so a bounce can carry into the
// next fall.
func (p *Particle) StopFalling() {
	p.Behavior = BaseBehavior(p.Species)
	p.Vy = 0
}

func (p Particle) String() string {
	return fmt.Sprintf("%s %s awake=%t v=(%.2f,%.2f) color=%#08x", p.Species, p.Behavior, p.Awake, p.Vx, p.Vy, p.Color)
}
