package core

import (
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	draw := func(seed int64) []bool {
		r := NewRNG(seed)
		out := make([]bool, 256)
		for i := range out {
			out[i] = r.Bool()
		}
		return out
	}
	a := draw(7)
	if !slices.Equal(a, draw(7)) {
		t.Fatal("same seed produced different bits")
	}
	if slices.Equal(a, draw(8)) {
		t.Fatal("different seeds produced identical bits")
	}
	ones := 0
	for _, b := range a {
		if b {
			ones++
		}
	}
	if ones == 0 || ones == len(a) {
		t.Fatalf("degenerate bit stream: %d ones of %d", ones, len(a))
	}
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(UniformSource, 3)
	if err != nil {
		t.Fatalf("NewSource(uniform): %v", err)
	}
	if _, ok := src.(*RNG); !ok {
		t.Fatalf("uniform source is %T, want *RNG", src)
	}
	if _, err := NewSource("glider-gun", 3); err == nil {
		t.Fatal("expected error for unknown source")
	}
	if !slices.Contains(SourceNames(), UniformSource) {
		t.Fatalf("SourceNames() = %v, missing %q", SourceNames(), UniformSource)
	}
}

func TestRegisterSourceIgnoresInvalid(t *testing.T) {
	before := len(Sources())
	RegisterSource("", func(int64) BitSource { return NewRNG(0) })
	RegisterSource("nil-factory", nil)
	if len(Sources()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}
