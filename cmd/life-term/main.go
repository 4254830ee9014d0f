package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mad-life/internal/life"
	"mad-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := life.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine, err := life.Open(cfg)
	if err != nil {
		log.Fatalf("building grid: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.New(engine, screen).Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Printf("stopped at generation %d, population %d", engine.GenerationNumber(), engine.Population())
}
