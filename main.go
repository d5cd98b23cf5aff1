package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/mesh-gradient/internal/audio"
	"github.com/iburimskiy/mesh-gradient/internal/config"
	"github.com/iburimskiy/mesh-gradient/internal/game"
	"github.com/iburimskiy/mesh-gradient/internal/mesh"
	"github.com/iburimskiy/mesh-gradient/internal/sim"
)

func run() error {
	cfg, level, err := config.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	mesh.SetLogger(logger)
	sim.SetLogger(logger)
	audio.SetLogger(logger)
	game.SetLogger(logger)

	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	g.Stop()
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "mesh-gradient:", err)
		os.Exit(1)
	}
}
