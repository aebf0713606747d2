// Package stats tracks how a board's population evolves and charts it.
package stats

// History records one sample per generation, starting with generation 0.
type History struct {
	Label      string
	Population []int

	fingerprints []uint64
	stableAt     int
}

// NewHistory returns an empty history.
func NewHistory(label string) *History {
	return &History{Label: label, stableAt: -1}
}

// Record appends the population and board fingerprint of the next generation.
func (h *History) Record(population int, fingerprint uint64) {
	gen := len(h.Population)
	if h.stableAt < 0 && gen > 0 && h.fingerprints[gen-1] == fingerprint {
		h.stableAt = gen
	}
	h.Population = append(h.Population, population)
	h.fingerprints = append(h.fingerprints, fingerprint)
}

// Generations returns the number of recorded samples.
func (h *History) Generations() int { return len(h.Population) }

// Initial returns the population of generation 0.
func (h *History) Initial() int {
	if len(h.Population) == 0 {
		return 0
	}
	return h.Population[0]
}

// Final returns the most recent population.
func (h *History) Final() int {
	if len(h.Population) == 0 {
		return 0
	}
	return h.Population[len(h.Population)-1]
}

// Peak returns the largest population and the generation it first occurred.
func (h *History) Peak() (population, generation int) {
	for gen, p := range h.Population {
		if p > population {
			population, generation = p, gen
		}
	}
	return population, generation
}

// StableAt reports the first generation identical to its predecessor.
func (h *History) StableAt() (int, bool) {
	return h.stableAt, h.stableAt >= 0
}

// ExtinctAt reports the first generation with no live cells.
func (h *History) ExtinctAt() (int, bool) {
	for gen, p := range h.Population {
		if p == 0 {
			return gen, true
		}
	}
	return 0, false
}
