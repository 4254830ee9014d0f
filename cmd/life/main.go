//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-life/internal/app"
	"mad-life/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	engine, err := life.Open(cfg.Life)
	if err != nil {
		log.Fatalf("building grid: %v", err)
	}

	game := app.New(engine, cfg.CellSize)
	defer game.Close()

	w, h := game.WindowSize()
	ebiten.SetWindowTitle("Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	log.Printf("life: %dx%d grid, p=%.2f, interval=%v, seed=%d",
		cfg.Life.Width, cfg.Life.Height, cfg.Life.AliveProbability, cfg.Life.Interval, cfg.Life.Seed)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
