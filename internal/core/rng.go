package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// An RNG is not safe for concurrent use; give every goroutine its own.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))}
}

// Seed resets the generator state.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance reports true with probability p. p <= 0 never fires, p >= 1 always does.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Int63 returns a non-negative pseudo-random 63-bit integer, handy for
// deriving child seeds.
func (r *RNG) Int63() int64 { return r.r.Int64() }

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Shuffle permutes buf in place.
func (r *RNG) Shuffle(buf []int) {
	r.r.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })
}

// Coprime returns a random stride in [1, n) sharing no factor with n. For
// n <= 2 the only valid stride is 1.
func (r *RNG) Coprime(n int) int {
	if n <= 2 {
		return 1
	}
	for {
		candidate := 1 + r.r.IntN(n-1)
		if gcd(candidate, n) == 1 {
			return candidate
		}
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
