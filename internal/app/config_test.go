package app

import (
	"flag"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.GridSize() != 800 {
		t.Fatalf("GridSize() = %d, want 800", cfg.GridSize())
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-size", "600", "-cell", "4", "-rate", "25", "-seed", "99", "-catchup", "3", "-hud", "0"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Size != 600 || cfg.CellSize != 4 || cfg.Rate != 25 || cfg.Seed != 99 || cfg.MaxCatchUp != 3 || cfg.HUDWidth != 0 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.GridSize() != 150 {
		t.Fatalf("GridSize() = %d, want 150", cfg.GridSize())
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero size":      func(c *Config) { c.Size = 0 },
		"zero cell":      func(c *Config) { c.CellSize = 0 },
		"cell too large": func(c *Config) { c.CellSize = c.Size + 1 },
		"rate too low":   func(c *Config) { c.Rate = 0.5 },
		"rate too high":  func(c *Config) { c.Rate = 61 },
		"zero tps":       func(c *Config) { c.TPS = 0 },
		"zero catchup":   func(c *Config) { c.MaxCatchUp = 0 },
		"negative hud":   func(c *Config) { c.HUDWidth = -1 },
		"unknown source": func(c *Config) { c.Source = "acorn" },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
