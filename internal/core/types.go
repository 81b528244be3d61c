package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a front end needs to drive and display a
// grid simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// ColorBuffer returns one packed 0xAARRGGBB value per cell, row-major.
	ColorBuffer() []uint32
}

// Chunked is implemented by simulations that partition the grid into column
// bands every tick.
type Chunked interface {
	LastChunks() []Rect
}

// Rect is a half-open cell rectangle [X0,X1) x [Y0,Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}
