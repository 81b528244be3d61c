package sand

import (
	"fmt"
	"strings"

	"falling-sand/internal/core"
)

// ScanOrder selects how a chunk's cells are visited within one tick. Every
// order applies the same rules and visits each cell exactly once; they only
// trade CPU cost for update-order unpredictability.
type ScanOrder uint8

const (
	// ScanZigZag walks rows bottom to top, every other row first and the
	// skipped rows second, reversing horizontal direction on each row.
	ScanZigZag ScanOrder = iota
	// ScanCoprime steps through the chunk's linear index space with a
	// random stride coprime to the cell count.
	ScanCoprime
	// ScanShuffled visits a full random permutation of the chunk.
	ScanShuffled
)

var scanOrderNames = []string{
	ScanZigZag:   "zigzag",
	ScanCoprime:  "coprime",
	ScanShuffled: "shuffled",
}

func (o ScanOrder) String() string {
	if int(o) < len(scanOrderNames) {
		return scanOrderNames[o]
	}
	return fmt.Sprintf("scan(%d)", uint8(o))
}

// ScanOrderNames lists the accepted scan order names in enum order.
func ScanOrderNames() []string {
	return append([]string(nil), scanOrderNames...)
}

// ParseScanOrder resolves a scan order by name.
func ParseScanOrder(name string) (ScanOrder, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range scanOrderNames {
		if n == name {
			return ScanOrder(i), nil
		}
	}
	return ScanZigZag, fmt.Errorf("unknown scan order %q", name)
}

// visit calls fn for every cell of c in the given order.
func (c Chunk) visit(order ScanOrder, rng *core.RNG, fn func(x, y int)) {
	switch order {
	case ScanCoprime:
		c.visitCoprime(rng, fn)
	case ScanShuffled:
		c.visitShuffled(rng, fn)
	default:
		c.visitZigZag(fn)
	}
}

func (c Chunk) visitZigZag(fn func(x, y int)) {
	reverse := false
	for start := c.YMax - 1; start >= c.YMax-2 && start >= c.YMin; start-- {
		for y := start; y >= c.YMin; y -= 2 {
			if reverse {
				for x := c.XMax - 1; x >= c.XMin; x-- {
					fn(x, y)
				}
			} else {
				for x := c.XMin; x < c.XMax; x++ {
					fn(x, y)
				}
			}
			reverse = !reverse
		}
	}
}

func (c Chunk) visitCoprime(rng *core.RNG, fn func(x, y int)) {
	n := c.Cells()
	if n <= 0 {
		return
	}
	w := c.Width()
	stride := rng.Coprime(n)
	i := rng.IntN(n)
	for k := 0; k < n; k++ {
		fn(c.XMin+i%w, c.YMin+i/w)
		i = (i + stride) % n
	}
}

func (c Chunk) visitShuffled(rng *core.RNG, fn func(x, y int)) {
	n := c.Cells()
	if n <= 0 {
		return
	}
	w := c.Width()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(order)
	for _, i := range order {
		fn(c.XMin+i%w, c.YMin+i/w)
	}
}
