package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	fs := NewFixedStep(10)
	clock := time.Unix(0, 0)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a step elapsed, should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("full step elapsed, should step")
	}
}

func TestFixedStepCapsBacklog(t *testing.T) {
	fs := NewFixedStep(10)
	clock := time.Unix(0, 0)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	clock = clock.Add(5 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
		if steps > 10 {
			break
		}
	}
	if steps != 2 {
		t.Fatalf("steps after stall = %d, want 2", steps)
	}
}

func TestSetTPSDefault(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("step = %v, want 60 TPS", fs.Step())
	}
}
