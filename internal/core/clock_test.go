package core

import (
	"math"
	"testing"
)

func TestClockPausedNeverSteps(t *testing.T) {
	c := NewClock(10, 3)
	for _, elapsed := range []float64{0, 0.05, 1, 10, 1000} {
		if got := c.Tick(elapsed); got != 0 {
			t.Fatalf("paused Tick(%v) = %d, want 0", elapsed, got)
		}
	}
	if c.Accumulated() != 0 {
		t.Fatalf("paused clock accumulated %v", c.Accumulated())
	}
}

func TestClockEmitsStepsPerInterval(t *testing.T) {
	c := NewClock(10, 10)
	c.SetRunning(true)

	if got := c.Tick(0.05); got != 0 {
		t.Fatalf("Tick(0.05) = %d, want 0", got)
	}
	if got := c.Tick(0.1); got != 1 {
		t.Fatalf("Tick(0.1) after 0.05 = %d, want 1", got)
	}
	if got := c.Tick(0.22); got != 2 {
		t.Fatalf("Tick(0.22) = %d, want 2", got)
	}
	if acc := c.Accumulated(); acc < 0 || acc > c.Interval() {
		t.Fatalf("accumulator %v outside [0, %v]", acc, c.Interval())
	}
}

func TestClockRequiresStrictlyMoreThanInterval(t *testing.T) {
	c := NewClock(4, 10)
	c.SetRunning(true)
	if got := c.Tick(0.25); got != 0 {
		t.Fatalf("Tick of exactly one interval = %d, want 0", got)
	}
	if got := c.Tick(0.01); got != 1 {
		t.Fatalf("Tick past one interval = %d, want 1", got)
	}
}

func TestClockCatchUpIsCapped(t *testing.T) {
	c := NewClock(60, 4)
	c.SetRunning(true)

	if got := c.Tick(10); got != 4 {
		t.Fatalf("stalled Tick = %d, want cap 4", got)
	}
	if acc := c.Accumulated(); acc < 0 || acc >= c.Interval() {
		t.Fatalf("backlog not dropped: accumulator %v, interval %v", acc, c.Interval())
	}
	if got := c.Tick(0); got != 0 {
		t.Fatalf("Tick(0) after capped tick = %d, want 0", got)
	}
}

func TestClockIgnoresNegativeElapsed(t *testing.T) {
	c := NewClock(10, 5)
	c.SetRunning(true)
	c.Tick(0.05)
	c.Tick(-3)
	if math.Abs(c.Accumulated()-0.05) > 1e-12 {
		t.Fatalf("accumulator = %v, want 0.05", c.Accumulated())
	}
}

func TestClockToggleKeepsAccumulator(t *testing.T) {
	c := NewClock(10, 5)
	if c.Running() {
		t.Fatal("new clock should start paused")
	}
	c.ToggleRunning()
	c.Tick(0.07)
	c.ToggleRunning()
	if c.Running() {
		t.Fatal("second toggle should pause")
	}
	if math.Abs(c.Accumulated()-0.07) > 1e-12 {
		t.Fatalf("toggle changed accumulator to %v", c.Accumulated())
	}
	c.ToggleRunning()
	if got := c.Tick(0.04); got != 1 {
		t.Fatalf("resumed Tick = %d, want 1", got)
	}
}

func TestClockRateClamp(t *testing.T) {
	c := NewClock(1, 5)
	c.DecreaseRate()
	if c.Rate() != MinRate {
		t.Fatalf("DecreaseRate at min gave %v", c.Rate())
	}
	c.IncreaseRate()
	if c.Rate() != 2 {
		t.Fatalf("IncreaseRate from 1 gave %v", c.Rate())
	}

	c.SetRate(60)
	c.IncreaseRate()
	if c.Rate() != MaxRate {
		t.Fatalf("IncreaseRate at max gave %v", c.Rate())
	}
	c.DecreaseRate()
	if c.Rate() != 59 {
		t.Fatalf("DecreaseRate from 60 gave %v", c.Rate())
	}

	cases := []struct{ in, want float64 }{
		{-5, 1}, {0, 1}, {0.5, 1}, {30, 30}, {61, 60}, {1e9, 60}, {math.NaN(), 1},
	}
	for _, tc := range cases {
		c.SetRate(tc.in)
		if c.Rate() != tc.want {
			t.Fatalf("SetRate(%v) = %v, want %v", tc.in, c.Rate(), tc.want)
		}
	}
}

func TestNewClockDefaults(t *testing.T) {
	c := NewClock(100, 0)
	if c.Rate() != MaxRate {
		t.Fatalf("rate = %v, want clamp to %d", c.Rate(), MaxRate)
	}
	if c.MaxCatchUp() != DefaultMaxCatchUp {
		t.Fatalf("maxCatchUp = %d, want %d", c.MaxCatchUp(), DefaultMaxCatchUp)
	}
}
