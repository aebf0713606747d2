package app

import (
	"errors"
	"flag"
	"fmt"

	"mad-life/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size       int
	CellSize   int
	Rate       float64
	TPS        int
	MaxCatchUp int
	Seed       int64
	Source     string
	HUDWidth   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Size:       800,
		CellSize:   1,
		Rate:       10,
		TPS:        60,
		MaxCatchUp: core.DefaultMaxCatchUp,
		Source:     core.UniformSource,
		HUDWidth:   160,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "board edge in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell edge in pixels")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "initial generations per second (1-60)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.MaxCatchUp, "catchup", c.MaxCatchUp, "max generations per frame after a stall")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board (0 picks one from the clock)")
	fs.StringVar(&c.Source, "source", c.Source, fmt.Sprintf("initial board source %v", core.SourceNames()))
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
}

// GridSize returns the number of cells along each edge of the square board.
func (c *Config) GridSize() int { return c.Size / c.CellSize }

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("size must be positive, got %d", c.Size)
	case c.CellSize <= 0:
		return fmt.Errorf("cell must be positive, got %d", c.CellSize)
	case c.CellSize > c.Size:
		return fmt.Errorf("cell %d larger than board %d", c.CellSize, c.Size)
	case c.Rate < core.MinRate || c.Rate > core.MaxRate:
		return fmt.Errorf("rate must be in [%d, %d], got %v", core.MinRate, core.MaxRate, c.Rate)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.MaxCatchUp < 1:
		return fmt.Errorf("catchup must be at least 1, got %d", c.MaxCatchUp)
	case c.HUDWidth < 0:
		return errors.New("hud width must not be negative")
	}
	if _, ok := core.Sources()[c.Source]; !ok {
		return fmt.Errorf("unknown source %q (have %v)", c.Source, core.SourceNames())
	}
	return nil
}
