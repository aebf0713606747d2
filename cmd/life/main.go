//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"mad-life/internal/app"
	_ "mad-life/internal/seed/noise"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	loop, err := app.NewLoopFromConfig(cfg)
	if err != nil {
		log.Fatalf("life: %v", err)
	}
	log.Printf("life: %dx%d board, source %s, seed %d", cfg.GridSize(), cfg.GridSize(), cfg.Source, cfg.Seed)

	game := app.New(loop, cfg.CellSize, cfg.HUDWidth)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
