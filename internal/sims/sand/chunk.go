package sand

import "falling-sand/internal/core"

// Chunk is a rectangular band [XMin,XMax) x [YMin,YMax) processed by one
// goroutine for one tick.
type Chunk struct {
	XMin, XMax int
	YMin, YMax int
}

// Width returns the number of columns in the chunk.
func (c Chunk) Width() int { return c.XMax - c.XMin }

// Cells returns the number of cells in the chunk.
func (c Chunk) Cells() int { return (c.XMax - c.XMin) * (c.YMax - c.YMin) }

// Rect converts the chunk to a core.Rect.
func (c Chunk) Rect() core.Rect {
	return core.Rect{X0: c.XMin, Y0: c.YMin, X1: c.XMax, Y1: c.YMax}
}

// ColumnarChunks splits [0,w) into count full-height column bands. The first
// band is narrowed by a random inset in [0, maxOffset) and every later border
// shifts with it, so chunk seams move every tick. The last band absorbs the
// remainder and ends exactly at w. count is clamped to [1, w].
func ColumnarChunks(w, h, count, maxOffset int, rng *core.RNG) []Chunk {
	if w <= 0 || h <= 0 {
		return nil
	}
	if count < 1 {
		count = 1
	}
	if count > w {
		count = w
	}
	size := w / count
	inset := 0
	if maxOffset > 0 {
		inset = rng.IntN(maxOffset)
	}
	if inset >= size {
		inset = size - 1
	}

	chunks := make([]Chunk, 0, count)
	xmin, xmax := 0, size-inset
	for i := 0; i < count; i++ {
		if i == count-1 {
			xmax = w
		}
		chunks = append(chunks, Chunk{XMin: xmin, XMax: xmax, YMin: 0, YMax: h})
		xmin = xmax
		xmax = min(xmax+size, w)
	}
	return chunks
}
