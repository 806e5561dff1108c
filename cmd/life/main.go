//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := log.New(os.Stderr, "life: ", log.LstdFlags)
	game := app.New(cfg, logger)

	ebiten.SetWindowTitle("life — space start/stop, c clear, r randomize")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
