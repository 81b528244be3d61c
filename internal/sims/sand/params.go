package sand

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParticleParams holds the tunable physical constants of one species.
type ParticleParams struct {
	// FreeFall integration.
	Gravity          float32 `yaml:"gravity"`
	MinimalVelocity  float32 `yaml:"minimal_velocity"`
	TerminalVelocity float32 `yaml:"terminal_velocity"`

	// Probability that a blocked solid falls asleep this tick.
	Resistance float64 `yaml:"resistance"`

	SpreadVelocity int     `yaml:"spread_velocity"`
	Density        int     `yaml:"density"`
	Viscosity      float64 `yaml:"viscosity"`
	FluidShimmer   float64 `yaml:"fluid_shimmer"`

	Volatility         float64 `yaml:"volatility"`
	VerticalAffinity   float64 `yaml:"vertical_affinity"`
	HorizontalAffinity float64 `yaml:"horizontal_affinity"`

	// Impact speed above which vertical momentum turns sideways on landing.
	SpeedToBounce      float32 `yaml:"speed_to_bounce"`
	HorizontalTransfer float32 `yaml:"horizontal_transfer"`
}

// ParamTable maps every species to its parameters.
type ParamTable [NumSpecies]ParticleParams

// For returns the parameters of species s.
func (t *ParamTable) For(s Species) ParticleParams {
	if int(s) >= NumSpecies {
		return ParticleParams{}
	}
	return t[s]
}

// DefaultParams returns the stock parameter table.
func DefaultParams() ParamTable {
	var t ParamTable
	t[Sand] = ParticleParams{
		Gravity:            0.5,
		MinimalVelocity:    1,
		TerminalVelocity:   8,
		Resistance:         0.01,
		SpeedToBounce:      4,
		HorizontalTransfer: 0.3,
	}
	t[Gravel] = ParticleParams{
		Gravity:            0.6,
		MinimalVelocity:    1,
		TerminalVelocity:   10,
		Resistance:         0.25,
		SpeedToBounce:      6,
		HorizontalTransfer: 0.15,
	}
	t[Water] = ParticleParams{
		SpreadVelocity: 10,
		Density:        5,
		Viscosity:      0.8,
		FluidShimmer:   0.01,
	}
	t[Oil] = ParticleParams{
		SpreadVelocity: 4,
		Density:        2,
		Viscosity:      0.4,
		FluidShimmer:   0.005,
	}
	t[Smoke] = ParticleParams{
		Volatility:         0.01,
		VerticalAffinity:   0.6,
		HorizontalAffinity: 0.5,
	}
	return t
}

// LoadParams reads a YAML document mapping species names to parameter
// overrides and applies it on top of DefaultParams. Fields missing from the
// file keep their default values.
func LoadParams(path string) (ParamTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParamTable{}, err
	}
	t, err := ParseParams(data)
	if err != nil {
		return ParamTable{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseParams decodes a YAML parameter document on top of DefaultParams.
func ParseParams(data []byte) (ParamTable, error) {
	t := DefaultParams()
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ParamTable{}, err
	}
	for name, node := range doc {
		s, err := ParseSpecies(name)
		if err != nil {
			return ParamTable{}, err
		}
		if s == OutOfBounds {
			return ParamTable{}, fmt.Errorf("species %q cannot be configured", name)
		}
		p := t[s]
		if err := node.Decode(&p); err != nil {
			return ParamTable{}, fmt.Errorf("species %s: %w", s, err)
		}
		t[s] = p
	}
	return t, nil
}

// MarshalYAML renders the table keyed by species name, skipping species
// without parameters.
func (t ParamTable) MarshalYAML() (interface{}, error) {
	out := make(map[string]ParticleParams)
	for i, p := range t {
		if p == (ParticleParams{}) {
			continue
		}
		out[Species(i).String()] = p
	}
	return out, nil
}
