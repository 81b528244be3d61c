package sand

import (
	"strings"
	"testing"

	"falling-sand/internal/core"
)

func TestColorNearStaysWithinVariance(t *testing.T) {
	rng := core.NewRNG(4)
	for i := 0; i < 500; i++ {
		c := colorNear(250, 3, 128, 10, rng)
		if c>>24 != 0xff {
			t.Fatalf("alpha not opaque: %#x", c)
		}
		r, g, b := int(c>>16&0xff), int(c>>8&0xff), int(c&0xff)
		if r < 240 || r > 255 || g < 0 || g > 13 || b < 118 || b > 138 {
			t.Fatalf("colour %#x outside jitter range", c)
		}
	}
	if got := colorNear(10, 20, 30, 0, rng); got != Pack(10, 20, 30) {
		t.Fatalf("zero variance should be exact, got %#x", got)
	}
}

func TestDebugBufferReflectsBehavior(t *testing.T) {
	s := newTestSandbox(4, 1, nil)
	s.Place(Sand, 0, 0)
	s.Place(Water, 1, 0)
	s.Place(Stone, 2, 0)
	s.Grid().At(0, 0).Awake = false

	buf := s.DebugBuffer()
	want := []uint32{debugAsleep, debugLiquid, debugStatic, debugEmpty}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("cell %d = %#x, want %#x", i, buf[i], want[i])
		}
	}
}

func TestSleepingMask(t *testing.T) {
	s := newTestSandbox(3, 1, nil)
	s.Place(Sand, 0, 0)
	s.Place(Gravel, 1, 0)
	s.Place(Water, 2, 0)
	s.Grid().At(1, 0).Awake = false
	s.Grid().At(2, 0).Awake = false

	mask := s.SleepingMask()
	if mask[0] || !mask[1] || mask[2] {
		t.Fatalf("mask = %v, want [false true false]", mask)
	}
}

func TestParticleString(t *testing.T) {
	s := newTestSandbox(2, 2, nil)
	s.Place(Water, 1, 1)
	got := s.Query(1, 1).String()
	if !strings.HasPrefix(got, "water liquid awake=true") {
		t.Fatalf("String() = %q", got)
	}
	if !strings.HasPrefix(s.Query(-1, 0).String(), "out_of_bounds solid") {
		t.Fatalf("sentinel String() = %q", s.Query(-1, 0).String())
	}
}
