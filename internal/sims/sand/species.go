package sand

import (
	"fmt"
	"strings"
)

// Species is the material kind of a particle.
type Species uint8

const (
	Empty Species = iota
	Sand
	Water
	Stone
	Smoke
	Gravel
	Wood
	Oil
	// OutOfBounds is never stored in the grid. Grid.Get returns it for
	// coordinates outside the grid so edge cells behave as if walled in.
	OutOfBounds

	// NumSpecies sizes per-species tables.
	NumSpecies = int(OutOfBounds) + 1
)

var speciesNames = [NumSpecies]string{
	Empty:       "empty",
	Sand:        "sand",
	Water:       "water",
	Stone:       "stone",
	Smoke:       "smoke",
	Gravel:      "gravel",
	Wood:        "wood",
	Oil:         "oil",
	OutOfBounds: "out_of_bounds",
}

func (s Species) String() string {
	if int(s) < NumSpecies {
		return speciesNames[s]
	}
	return fmt.Sprintf("species(%d)", uint8(s))
}

// ParseSpecies resolves a species by its lower-case name.
func ParseSpecies(name string) (Species, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range speciesNames {
		if n == name {
			return Species(i), nil
		}
	}
	return Empty, fmt.Errorf("unknown species %q", name)
}

// Placeable lists the species a user may paint into the grid.
func Placeable() []Species {
	return []Species{Sand, Water, Stone, Smoke, Gravel, Wood, Oil}
}

// Behavior is the update rule currently governing a cell.
type Behavior uint8

const (
	BehaviorNone Behavior = iota
	BehaviorSolid
	BehaviorLiquid
	BehaviorGas
	// BehaviorFreeFall is transient: a solid adopts it when it finds open
	// space below and reverts to its base behavior on landing.
	BehaviorFreeFall
)

func (b Behavior) String() string {
	switch b {
	case BehaviorSolid:
		return "solid"
	case BehaviorLiquid:
		return "liquid"
	case BehaviorGas:
		return "gas"
	case BehaviorFreeFall:
		return "freefall"
	default:
		return "none"
	}
}

// BaseBehavior maps a species to its resting behavior.
func BaseBehavior(s Species) Behavior {
	switch s {
	case Sand, Gravel, OutOfBounds:
		return BehaviorSolid
	case Water, Oil:
		return BehaviorLiquid
	case Smoke:
		return BehaviorGas
	default:
		return BehaviorNone
	}
}
