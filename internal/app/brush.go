package app

import (
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

// BrushKeys maps the cluster keys shared by the front ends to the species
// they paint. Empty erases.
var BrushKeys = map[rune]sand.Species{
	'c': sand.Sand,
	'w': sand.Water,
	's': sand.Stone,
	'3': sand.Smoke,
	'v': sand.Gravel,
	'd': sand.Wood,
	'o': sand.Oil,
	'g': sand.Empty,
}

// CellAt converts a window position into grid coordinates for the given
// pixel scale. ok is false when the position lies outside the grid.
func CellAt(px, py, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}
