// Package noise provides a clustered bit source driven by Perlin noise.
package noise

import (
	"github.com/aquilax/go-perlin"

	"mad-life/internal/core"
)

// Name is the registry name of the noise source.
const Name = "noise"

const (
	alpha   = 2.0
	beta    = 2.0
	octaves = 3
)

// Config tunes the noise field.
type Config struct {
	// Scale converts cell coordinates to noise space. Smaller values give
	// larger clusters.
	Scale float64
	// Gain stretches the noise around the 0.5 baseline probability.
	Gain float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Scale: 0.05, Gain: 1.6}
}

// Source yields live cells with a probability that follows a Perlin field.
type Source struct {
	cfg   Config
	field *perlin.Perlin
	rng   *core.RNG
	pos   int
}

// New returns a Source seeded with seed.
func New(seed int64, cfg Config) *Source {
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultConfig().Scale
	}
	return &Source{
		cfg:   cfg,
		field: perlin.NewPerlin(alpha, beta, octaves, seed),
		rng:   core.NewRNG(seed),
	}
}

// Probability returns the chance that the cell at (x, y) starts alive.
func (s *Source) Probability(x, y int) float64 {
	n := s.field.Noise2D(float64(x)*s.cfg.Scale, float64(y)*s.cfg.Scale)
	p := 0.5 + s.cfg.Gain*n
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// BoolAt samples the cell at (x, y).
func (s *Source) BoolAt(x, y int) bool {
	return s.rng.Float64() < s.Probability(x, y)
}

// Bool samples along a single noise row for callers without coordinates.
func (s *Source) Bool() bool {
	s.pos++
	return s.BoolAt(s.pos, 0)
}

func init() {
	core.RegisterSource(Name, func(seed int64) core.BitSource {
		return New(seed, DefaultConfig())
	})
}
