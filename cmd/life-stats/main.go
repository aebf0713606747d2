package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"mad-life/internal/core"
	_ "mad-life/internal/seed/noise"
	"mad-life/internal/stats"
)

func main() {
	size := flag.Int("size", 200, "board edge in cells")
	gens := flag.Int("gens", 500, "generations to simulate per run")
	runs := flag.Int("runs", 8, "number of boards, seeded seed..seed+runs-1")
	workers := flag.Int("workers", runtime.NumCPU(), "boards simulated in parallel")
	seed := flag.Int64("seed", 1, "seed of the first board")
	source := flag.String("source", core.UniformSource, fmt.Sprintf("initial board source %v", core.SourceNames()))
	chartPath := flag.String("chart", "", "write a population chart PNG to this path")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	base := stats.RunConfig{Size: *size, Generations: *gens, Source: *source, Seed: *seed}
	fmt.Printf("Simulating %d boards of %dx%d for %d generations (%d workers, source %s)\n",
		*runs, *size, *size, *gens, *workers, *source)

	start := time.Now()
	histories, err := stats.RunBatch(ctx, base, *runs, *workers)
	if err != nil {
		log.Fatalf("life-stats: %v", err)
	}
	fmt.Printf("Finished in %s\n\n", time.Since(start).Round(time.Millisecond))

	fmt.Printf("%-12s %8s %8s %6s %8s %8s\n", "run", "initial", "peak", "at", "final", "stable")
	for _, h := range histories {
		peak, peakGen := h.Peak()
		stable := "-"
		if gen, ok := h.StableAt(); ok {
			stable = fmt.Sprintf("%d", gen)
		}
		if gen, ok := h.ExtinctAt(); ok {
			stable = fmt.Sprintf("dead@%d", gen)
		}
		fmt.Printf("%-12s %8d %8d %6d %8d %8s\n", h.Label, h.Initial(), peak, peakGen, h.Final(), stable)
	}

	if *chartPath == "" {
		return
	}
	f, err := os.Create(*chartPath)
	if err != nil {
		log.Fatalf("life-stats: %v", err)
	}
	if err := stats.RenderChart(f, histories, 1024, 480); err != nil {
		f.Close()
		log.Fatalf("life-stats: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("life-stats: %v", err)
	}
	log.Printf("life-stats: wrote %s", *chartPath)
}
