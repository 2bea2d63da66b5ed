//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"golife/internal/app"
	"golife/internal/core"
	_ "golife/internal/worlds/dense"
	_ "golife/internal/worlds/sparse"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Worlds()[cfg.World]
	if !ok {
		log.Fatalf("unknown world %q", cfg.World)
	}

	view := core.Size{W: cfg.Width, H: cfg.Height}
	if err := app.ValidateGridFits(view, cfg.Cell, app.DisplayBounds()); err != nil {
		log.Fatal(err)
	}

	world, err := factory(cfg.WorldConfig())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(world, view, cfg.Cell, cfg.Rate, cfg.Seed)

	ebiten.SetWindowTitle("golife — " + world.Name())
	ebiten.SetWindowSize(view.W*cfg.Cell, view.H*cfg.Cell)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
