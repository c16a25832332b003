//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"sandgarden/internal/app"
	"sandgarden/internal/core"
	_ "sandgarden/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.List {
		for _, name := range core.Names() {
			fmt.Println(name)
		}
		return
	}

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()
	hudWidth := cfg.HUDWidth
	if hudWidth < 0 {
		hudWidth = 0
	}

	ebiten.SetWindowTitle("sandgarden - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+hudWidth, size.H*cfg.Scale)
	if cfg.Follow {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
