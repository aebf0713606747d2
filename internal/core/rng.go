package core

import "math/rand/v2"

// UniformSource is the registry name of the RNG-backed bit source.
const UniformSource = "uniform"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

func init() {
	RegisterSource(UniformSource, func(seed int64) BitSource {
		return NewRNG(seed)
	})
}
