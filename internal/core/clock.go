package core

import "math"

const (
	// MinRate is the slowest supported logic rate in generations per second.
	MinRate = 1
	// MaxRate is the fastest supported logic rate in generations per second.
	MaxRate = 60
	// DefaultMaxCatchUp bounds the steps a single Tick may request.
	DefaultMaxCatchUp = 5
)

// Clock turns variable real elapsed time into evenly paced logic steps,
// independent of the render frame rate.
type Clock struct {
	rate       float64
	running    bool
	acc        float64
	maxCatchUp int
}

// NewClock constructs a paused Clock at the given rate. maxCatchUp limits how
// many steps a single Tick may request after a render stall.
func NewClock(rate float64, maxCatchUp int) *Clock {
	if maxCatchUp < 1 {
		maxCatchUp = DefaultMaxCatchUp
	}
	c := &Clock{maxCatchUp: maxCatchUp}
	c.SetRate(rate)
	return c
}

// Tick adds elapsed seconds to the accumulator and returns the number of logic
// steps that are due. A paused clock never requests steps.
func (c *Clock) Tick(elapsed float64) int {
	if !c.running {
		return 0
	}
	if elapsed > 0 {
		c.acc += elapsed
	}
	interval := c.Interval()
	steps := 0
	for c.acc > interval {
		if steps == c.maxCatchUp {
			// Drop the backlog but keep the phase.
			c.acc = math.Mod(c.acc, interval)
			break
		}
		c.acc -= interval
		steps++
	}
	return steps
}

// Interval returns the duration of one logic step in seconds.
func (c *Clock) Interval() float64 { return 1 / c.rate }

// Rate returns the current logic rate in generations per second.
func (c *Clock) Rate() float64 { return c.rate }

// SetRate changes the logic rate, clamped to [MinRate, MaxRate].
func (c *Clock) SetRate(rate float64) {
	if math.IsNaN(rate) {
		rate = MinRate
	}
	c.rate = math.Max(MinRate, math.Min(MaxRate, rate))
}

// IncreaseRate raises the rate by one, saturating at MaxRate.
func (c *Clock) IncreaseRate() { c.SetRate(c.rate + 1) }

// DecreaseRate lowers the rate by one, saturating at MinRate.
func (c *Clock) DecreaseRate() { c.SetRate(c.rate - 1) }

// Running reports whether the clock is emitting steps.
func (c *Clock) Running() bool { return c.running }

// SetRunning starts or pauses the clock.
func (c *Clock) SetRunning(running bool) { c.running = running }

// ToggleRunning flips the running flag. The accumulator is left untouched.
func (c *Clock) ToggleRunning() { c.running = !c.running }

// Accumulated returns the residual time not yet consumed by a step.
func (c *Clock) Accumulated() float64 { return c.acc }

// MaxCatchUp returns the per-tick step cap.
func (c *Clock) MaxCatchUp() int { return c.maxCatchUp }
