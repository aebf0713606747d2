package stats

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"mad-life/internal/core"
	"mad-life/internal/life"
)

// RunConfig describes one headless simulation.
type RunConfig struct {
	Size        int
	Generations int
	Source      string
	Seed        int64
}

// Run seeds a square board and records its population for every generation.
func Run(ctx context.Context, cfg RunConfig) (*History, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d", cfg.Size)
	}
	if cfg.Generations < 0 {
		return nil, fmt.Errorf("generations must not be negative, got %d", cfg.Generations)
	}
	bits, err := core.NewSource(cfg.Source, cfg.Seed)
	if err != nil {
		return nil, err
	}

	grid := life.NewGrid(cfg.Size, cfg.Size)
	grid.Initialize(bits)

	h := NewHistory(fmt.Sprintf("seed %d", cfg.Seed))
	h.Record(grid.Population(), grid.Fingerprint())
	for gen := 1; gen <= cfg.Generations; gen++ {
		if gen%64 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		grid.Step()
		h.Record(grid.Population(), grid.Fingerprint())
	}
	return h, nil
}

// RunBatch runs `runs` boards seeded base.Seed, base.Seed+1, ... with at most
// `workers` in flight. Results are ordered by seed.
func RunBatch(ctx context.Context, base RunConfig, runs, workers int) ([]*History, error) {
	if runs <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}
	results := make([]*History, runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < runs; i++ {
		cfg := base
		cfg.Seed = base.Seed + int64(i)
		g.Go(func() error {
			h, err := Run(ctx, cfg)
			if err != nil {
				return fmt.Errorf("seed %d: %w", cfg.Seed, err)
			}
			results[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
