package core

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	fs := NewFixedStep(200 * time.Millisecond)

	frame := time.Second / 60
	ticks := 0
	for i := 0; i < 60; i++ {
		if fs.Advance(frame) {
			ticks++
		}
	}
	// Each tick needs strictly more than 200ms, i.e. 13 frames at 60 FPS.
	if ticks != 4 {
		t.Fatalf("expected 4 ticks in one second of 60fps frames, got %d", ticks)
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	fs := NewFixedStep(200 * time.Millisecond)
	if !fs.Advance(5 * time.Second) {
		t.Fatal("expected a long stall to fire a tick")
	}
	if fs.Advance(0) {
		t.Fatal("stall must not leave catch-up ticks behind")
	}
}

func TestFixedStepDefaultsNonPositive(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != DefaultStep {
		t.Fatalf("expected default step %v, got %v", DefaultStep, fs.Step())
	}
	fs.SetStep(-time.Second)
	if fs.Step() != DefaultStep {
		t.Fatalf("expected negative step to fall back to %v, got %v", DefaultStep, fs.Step())
	}
}

func TestFixedStepShouldStepUsesClock(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	fs := NewFixedStep(200 * time.Millisecond)
	fs.now = func() time.Time { return now }

	if fs.ShouldStep() {
		t.Fatal("first call only primes the clock")
	}
	now = now.Add(150 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("150ms is below the interval")
	}
	now = now.Add(100 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("250ms accumulated should fire")
	}

	fs.Reset()
	now = now.Add(time.Hour)
	if fs.ShouldStep() {
		t.Fatal("reset must restart measurement rather than count the gap")
	}
}
