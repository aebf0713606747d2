package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// BitSource yields uniformly distributed booleans used to seed a board.
type BitSource interface {
	Bool() bool
}

// PositionalSource is implemented by sources whose output depends on the cell
// being seeded. Grids prefer BoolAt over Bool when it is available.
type PositionalSource interface {
	BoolAt(x, y int) bool
}

// SourceFactory constructs a BitSource for the given seed.
type SourceFactory func(seed int64) BitSource

var sources = map[string]SourceFactory{}

// RegisterSource adds a bit source factory under the provided name.
func RegisterSource(name string, f SourceFactory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources exposes the registry of available bit source factories.
func Sources() map[string]SourceFactory {
	return sources
}

// SourceNames returns the registered source names in sorted order.
func SourceNames() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSource builds the named source seeded with seed.
func NewSource(name string, seed int64) (BitSource, error) {
	f, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown source %q (have %v)", name, SourceNames())
	}
	return f(seed), nil
}
