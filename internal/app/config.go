package app

import (
	"flag"
	"fmt"

	"falling-sand/internal/sims/sand"
)

// Config holds the command-line options shared by the sandbox front ends.
type Config struct {
	Scale    int
	TPS      int
	HUDWidth int

	Width         int
	Height        int
	Threads       int
	ChunkOffset   int
	ClusterRadius int
	Seed          int64
	Scan          string
	ParamsPath    string
}

// NewConfig returns the defaults used when no flags are given.
func NewConfig() *Config {
	def := sand.DefaultConfig()
	return &Config{
		Scale:         2,
		TPS:           60,
		HUDWidth:      220,
		Width:         def.Width,
		Height:        def.Height,
		Threads:       def.Threads,
		ChunkOffset:   def.ChunkOffset,
		ClusterRadius: def.ClusterRadius,
		Seed:          def.Seed,
		Scan:          def.Scan.String(),
	}
}

// Bind registers the options on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 disables)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.IntVar(&c.Threads, "threads", c.Threads, "column chunks per tick")
	fs.IntVar(&c.ChunkOffset, "chunk-offset", c.ChunkOffset, "maximum random shift of chunk borders")
	fs.IntVar(&c.ClusterRadius, "radius", c.ClusterRadius, "cluster brush radius")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.StringVar(&c.Scan, "scan", c.Scan, "chunk scan order (zigzag, coprime, shuffled)")
	fs.StringVar(&c.ParamsPath, "params", c.ParamsPath, "YAML file overriding species parameters")
}

// SandConfig converts the options into a sandbox configuration, loading the
// parameter file when one is given.
func (c *Config) SandConfig() (sand.Config, error) {
	cfg := sand.DefaultConfig()
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.Threads = c.Threads
	cfg.ChunkOffset = c.ChunkOffset
	cfg.ClusterRadius = c.ClusterRadius
	cfg.Seed = c.Seed

	scan, err := sand.ParseScanOrder(c.Scan)
	if err != nil {
		return sand.Config{}, fmt.Errorf("scan: %w", err)
	}
	cfg.Scan = scan

	if c.ParamsPath != "" {
		params, err := sand.LoadParams(c.ParamsPath)
		if err != nil {
			return sand.Config{}, fmt.Errorf("params: %w", err)
		}
		cfg.Params = params
	}
	return cfg, nil
}
