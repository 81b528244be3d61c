package sand

import "strconv"

// Config controls the sandbox dimensions and scheduler knobs.
type Config struct {
	Width  int
	Height int

	// Threads is the number of column chunks per tick; chunks of one
	// parity run concurrently.
	Threads int
	// ChunkOffset bounds the random per-tick shift of chunk borders.
	ChunkOffset   int
	ClusterRadius int

	Seed int64
	Scan ScanOrder

	Params ParamTable
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         400,
		Height:        300,
		Threads:       20,
		ChunkOffset:   400/20 - 10,
		ClusterRadius: 5,
		Seed:          1337,
		Scan:          ScanZigZag,
		Params:        DefaultParams(),
	}
}

// normalize clamps values that would otherwise divide by zero or index
// outside the grid.
func (c Config) normalize() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.Threads < 1 {
		c.Threads = 1
	}
	if c.ChunkOffset < 0 {
		c.ChunkOffset = 0
	}
	if c.ClusterRadius < 0 {
		c.ClusterRadius = 0
	}
	if int(c.Scan) >= len(scanOrderNames) {
		c.Scan = ScanZigZag
	}
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["threads"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Threads = parsed
		}
	}
	if v, ok := cfg["chunk_offset"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ChunkOffset = parsed
		}
	}
	if v, ok := cfg["cluster_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ClusterRadius = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scan"]; ok {
		if parsed, err := ParseScanOrder(v); err == nil {
			c.Scan = parsed
		}
	}
	return c
}
