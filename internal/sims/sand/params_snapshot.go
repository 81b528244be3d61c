package sand

import "falling-sand/internal/core"

const maxThreads = 256

// Parameters reports the grid and scheduler settings.
func (s *Sandbox) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
				core.Int64Param("ticks", "Ticks", int64(s.ticks)),
				core.IntParam("mass", "Mass", s.grid.Mass()),
			},
		},
		{
			Name: "Scheduler",
			Params: []core.Parameter{
				core.IntParam("threads", "Threads", s.cfg.Threads),
				core.IntParam("chunk_offset", "Chunk offset", s.cfg.ChunkOffset),
				core.ChoiceParam("scan", "Scan order", s.cfg.Scan.String()),
				core.IntParam("cluster_radius", "Brush radius", s.cfg.ClusterRadius),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the knobs adjustable while the simulation runs.
// Species parameters stay fixed for the lifetime of the sandbox.
func (s *Sandbox) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "threads", Label: "Threads", Type: core.ParamTypeInt, Min: 1, Max: maxThreads},
		{Key: "chunk_offset", Label: "Chunk offset", Type: core.ParamTypeInt, Min: 0, Max: s.cfg.Width},
		{Key: "scan", Label: "Scan order", Type: core.ParamTypeChoice, Choices: ScanOrderNames()},
		{Key: "cluster_radius", Label: "Brush radius", Type: core.ParamTypeInt, Min: 0, Max: 64},
	}
}

// SetIntParameter updates a scheduler knob between ticks. It reports whether
// the key was recognised.
func (s *Sandbox) SetIntParameter(key string, value int) bool {
	for _, ctrl := range s.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "threads":
			s.cfg.Threads = value
		case "chunk_offset":
			s.cfg.ChunkOffset = value
		case "scan":
			s.cfg.Scan = ScanOrder(value)
		case "cluster_radius":
			s.cfg.ClusterRadius = value
		}
		return true
	}
	return false
}
