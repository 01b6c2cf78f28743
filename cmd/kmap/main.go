//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	_ "karnaugh/internal/cover/exact"
	_ "karnaugh/internal/cover/weighted"

	"karnaugh/internal/app"
	"karnaugh/pkg/kmap"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Scale <= 0 {
		log.Fatalf("invalid scale %d", cfg.Scale)
	}
	z, err := cfg.NewMinimizer(kmap.WithLogger(log.StandardLogger()))
	if err != nil {
		log.Fatalf("configure minimizer: %v", err)
	}

	game := app.New(z, cfg, log.StandardLogger())
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("karnaugh — " + z.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
