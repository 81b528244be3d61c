package main

import (
	"time"

	"falling-sand/internal/sims/sand"
)

type scenarioResult struct {
	threads int
	scan    sand.ScanOrder

	initialMass int
	finalMass   int
	// settled counts the non-gas species, which the engine never creates
	// or destroys; smoke decays by design.
	initialSettled int
	finalSettled   int
	smoke          int

	elapsed time.Duration
	series  []float64
}

// drift is the relative change in non-gas particle count over the run.
func (r scenarioResult) drift() float64 {
	if r.initialSettled == 0 {
		return 0
	}
	return float64(r.finalSettled-r.initialSettled) / float64(r.initialSettled)
}

func (r scenarioResult) perTick() time.Duration {
	if len(r.series) == 0 {
		return 0
	}
	return r.elapsed / time.Duration(len(r.series))
}

// populate builds the benchmark scene: a stone floor with two ledges, a
// water pool on the left, an oil slick on the right, a band of sand and
// gravel along the top and a smoke plume in the middle.
func populate(s *sand.Sandbox) {
	size := s.Size()
	w, h := size.W, size.H

	for x := 0; x < w; x++ {
		s.Place(sand.Stone, x, h-1)
	}
	for x := w / 8; x < w*3/8; x++ {
		s.Place(sand.Wood, x, h*2/3)
	}
	for x := w * 5 / 8; x < w*7/8; x++ {
		s.Place(sand.Stone, x, h/2)
	}

	for y := h * 3 / 4; y < h-1; y++ {
		for x := 0; x < w/3; x++ {
			s.Place(sand.Water, x, y)
		}
		for x := w * 2 / 3; x < w; x++ {
			s.Place(sand.Oil, x, y)
		}
	}

	for y := 0; y < h/5; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%3 == 0 {
				s.Place(sand.Gravel, x, y)
			} else {
				s.Place(sand.Sand, x, y)
			}
		}
	}

	s.PlaceCluster(sand.Smoke, w/2, h*3/5, max(1, min(w, h)/8))
}

// now is the bench clock, swapped out in tests.
var now = time.Now

func settledMass(s *sand.Sandbox) int {
	return s.Mass() - s.Count(sand.Smoke)
}

func runScenario(cfg sand.Config, ticks int) scenarioResult {
	s := sand.NewWithConfig(cfg)
	populate(s)

	res := scenarioResult{
		threads:        s.Config().Threads,
		scan:           s.Config().Scan,
		initialMass:    s.Mass(),
		initialSettled: settledMass(s),
		series:         make([]float64, 0, ticks),
	}

	// Only Step is timed; the mass scan feeding the graph is not.
	for i := 0; i < ticks; i++ {
		start := now()
		s.Step()
		res.elapsed += now().Sub(start)
		res.series = append(res.series, float64(s.Mass()))
	}

	res.finalMass = s.Mass()
	res.finalSettled = settledMass(s)
	res.smoke = s.Count(sand.Smoke)
	return res
}
