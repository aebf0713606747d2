package noise

import (
	"testing"

	"mad-life/internal/core"
	"mad-life/internal/life"
)

func TestRegistered(t *testing.T) {
	src, err := core.NewSource(Name, 1)
	if err != nil {
		t.Fatalf("NewSource(%q): %v", Name, err)
	}
	if _, ok := src.(core.PositionalSource); !ok {
		t.Fatalf("%T does not implement core.PositionalSource", src)
	}
}

func TestProbabilityInRange(t *testing.T) {
	s := New(42, Config{Scale: 0.1, Gain: 5})
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if p := s.Probability(x, y); p < 0 || p > 1 {
				t.Fatalf("Probability(%d,%d) = %v", x, y, p)
			}
		}
	}
}

func TestZeroGainIsUniformHalf(t *testing.T) {
	s := New(9, Config{Scale: 0.1, Gain: 0})
	if p := s.Probability(13, 7); p != 0.5 {
		t.Fatalf("Probability with zero gain = %v, want 0.5", p)
	}
}

func TestDeterministicBoards(t *testing.T) {
	a, b := life.NewGrid(48, 48), life.NewGrid(48, 48)
	a.Initialize(New(3, DefaultConfig()))
	b.Initialize(New(3, DefaultConfig()))
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("same seed produced different boards")
	}
	if p := a.Population(); p == 0 || p == 48*48 {
		t.Fatalf("degenerate noise board population %d", p)
	}
}

func TestNonPositiveScaleFallsBack(t *testing.T) {
	s := New(1, Config{Scale: 0, Gain: 1})
	if s.cfg.Scale != DefaultConfig().Scale {
		t.Fatalf("scale = %v, want default", s.cfg.Scale)
	}
	_ = s.Bool()
}
