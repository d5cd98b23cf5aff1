package config

import (
	"flag"
	"log/slog"
)

// Parse reads command line flags over the defaults and validates the result.
func Parse(args []string) (Config, slog.Level, error) {
	cfg := Default()
	fs := flag.NewFlagSet("mesh-gradient", flag.ContinueOnError)

	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	fs.IntVar(&cfg.Nodes, "nodes", cfg.Nodes, "number of moving points")
	fs.Float64Var(&cfg.OuterBuffer, "buffer", cfg.OuterBuffer, "margin past the window edges before points wrap")
	fs.Float64Var(&cfg.MaxEffectDist, "effect-dist", cfg.MaxEffectDist, "pointer influence radius")
	fs.Float64Var(&cfg.RotationSpeed, "rotation-speed", cfg.RotationSpeed, "max heading change per frame near the pointer, in degrees")
	fs.Float64Var(&cfg.Speed, "speed", cfg.Speed, "point speed per frame")
	fs.DurationVar(&cfg.Transition, "transition", cfg.Transition, "colour scheme transition time")
	fs.StringVar(&cfg.Palette, "palette", cfg.Palette, "starting colour scheme, 1-based number or name")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "draw triangle edges and the HUD")
	fs.BoolVar(&cfg.Markers, "markers", cfg.Markers, "draw point markers")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable the colour switch chime")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for time based")
	level := slog.LevelWarn
	fs.TextVar(&level, "log-level", level, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return cfg, level, err
	}
	return cfg, level, cfg.Validate()
}
