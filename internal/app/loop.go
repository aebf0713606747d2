package app

import (
	"mad-life/internal/core"
	"mad-life/internal/life"
)

// Action is a user command polled once per frame.
type Action int

const (
	ActionQuit Action = iota
	ActionToggleRun
	ActionSpeedUp
	ActionSpeedDown
	ActionStep
	ActionReset
)

// Input reports which actions were triggered this frame. Pressed is
// edge-triggered; Repeated also fires while a key is held.
type Input interface {
	Pressed(a Action) bool
	Repeated(a Action) bool
}

const rateKey = "rate"

// Loop drives a grid from a clock. It is independent of the windowing host.
type Loop struct {
	grid       *life.Grid
	clock      *core.Clock
	bits       core.BitSource
	cellSize   int
	generation int
}

// NewLoop seeds grid from bits and returns a paused loop.
func NewLoop(grid *life.Grid, clock *core.Clock, bits core.BitSource, cellSize int) *Loop {
	if cellSize <= 0 {
		cellSize = 1
	}
	l := &Loop{grid: grid, clock: clock, bits: bits, cellSize: cellSize}
	l.Reset()
	return l
}

// NewLoopFromConfig builds the grid, clock and bit source described by cfg.
func NewLoopFromConfig(cfg *Config) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bits, err := core.NewSource(cfg.Source, cfg.Seed)
	if err != nil {
		return nil, err
	}
	n := cfg.GridSize()
	clock := core.NewClock(cfg.Rate, cfg.MaxCatchUp)
	return NewLoop(life.NewGrid(n, n), clock, bits, cfg.CellSize), nil
}

// Frame applies this frame's input, advances the clock by elapsed seconds and
// runs every step it requests. It returns false once quit was requested.
func (l *Loop) Frame(in Input, elapsed float64) bool {
	if in.Pressed(ActionQuit) {
		return false
	}
	if in.Pressed(ActionToggleRun) {
		l.clock.ToggleRunning()
	}
	if in.Repeated(ActionSpeedDown) {
		l.clock.DecreaseRate()
	}
	if in.Repeated(ActionSpeedUp) {
		l.clock.IncreaseRate()
	}
	if in.Pressed(ActionStep) && !l.clock.Running() {
		l.step()
	}
	if in.Pressed(ActionReset) {
		l.Reset()
	}

	for n := l.clock.Tick(elapsed); n > 0; n-- {
		l.step()
	}
	return true
}

func (l *Loop) step() {
	l.grid.Step()
	l.generation++
}

// Reset re-randomizes the board. The clock keeps its state.
func (l *Loop) Reset() {
	l.grid.Initialize(l.bits)
	l.generation = 0
}

// Render hands every live cell to fill in pixel coordinates.
func (l *Loop) Render(fill func(x, y, size int)) {
	l.grid.Render(l.cellSize, fill)
}

// Grid exposes the board.
func (l *Loop) Grid() *life.Grid { return l.grid }

// Generation returns the number of steps since the last reset.
func (l *Loop) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Loop) Population() int { return l.grid.Population() }

// Running reports whether the clock is advancing the board.
func (l *Loop) Running() bool { return l.clock.Running() }

// Rate returns the logic rate in generations per second.
func (l *Loop) Rate() float64 { return l.clock.Rate() }

// Parameters reports the loop state for the HUD.
func (l *Loop) Parameters() core.ParameterSnapshot {
	size := l.grid.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Clock",
			Params: []core.Parameter{
				core.IntParam(rateKey, "Rate", int(l.clock.Rate())),
				core.BoolParam("running", "Running", l.clock.Running()),
			},
		},
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.generation),
				core.IntParam("population", "Population", l.grid.Population()),
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (l *Loop) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: rateKey, Label: "Rate", Step: 1, Min: core.MinRate, Max: core.MaxRate},
	}
}

// SetIntParameter applies a HUD adjustment.
func (l *Loop) SetIntParameter(key string, value int) bool {
	if key != rateKey {
		return false
	}
	l.clock.SetRate(float64(value))
	return true
}
