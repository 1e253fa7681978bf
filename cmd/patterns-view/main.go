//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"pattern-ca/internal/app"
	"pattern-ca/internal/core"
	_ "pattern-ca/internal/sims/pattern"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}

	opts := map[string]string{}
	if cfg.Pattern != "" {
		opts["pattern"] = cfg.Pattern
	}
	sim := factory(opts)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("pattern-ca " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
