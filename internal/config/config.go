package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/iburimskiy/mesh-gradient/internal/geom"
	"github.com/iburimskiy/mesh-gradient/internal/palette"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Mesh Gradient - 1-9: colour scheme, drag: steer, D: edges, S: snapshot, Esc/Q: quit"

	// Mesh parameters
	NodeCount   = 200
	OuterBuffer = 120
	RadiusMin   = 1.75
	RadiusMax   = 3.25

	// Motion parameters, distances in CSS pixels before the device ratio.
	// A tick ratio of 1 is one 60 Hz frame.
	MaxEffectDist = 225
	RotationSpeed = 4
	NodeSpeed     = 0.75 // 0.045 px per ms
	MinDT         = 0.01

	TransitionDuration = time.Second

	// Audio cue
	ChimeSampleRate = 44100
	ChimeDuration   = 350 * time.Millisecond
	ChimeVolume     = 0.18
)

var (
	MarkerColor = geom.RGBA(255, 255, 255, 0.4)
	EdgeColor   = geom.RGB(0, 0, 0)
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the runtime configuration. Distances are in CSS pixels and are
// multiplied by the device scale ratio when the simulation is built.
type Config struct {
	Width, Height int

	Nodes         int
	OuterBuffer   float64
	MaxEffectDist float64
	RotationSpeed float64
	Speed         float64
	RadiusMin     float64
	RadiusMax     float64
	Transition    time.Duration

	Palette string
	Debug   bool
	Markers bool
	Mute    bool
	Seed    int64
}

// Default returns the configuration the visual was tuned with.
func Default() Config {
	return Config{
		Width:         WindowWidth,
		Height:        WindowHeight,
		Nodes:         NodeCount,
		OuterBuffer:   OuterBuffer,
		MaxEffectDist: MaxEffectDist,
		RotationSpeed: RotationSpeed,
		Speed:         NodeSpeed,
		RadiusMin:     RadiusMin,
		RadiusMax:     RadiusMax,
		Transition:    TransitionDuration,
		Palette:       "1",
		Markers:       true,
	}
}

// PaletteIndex resolves Palette, either a 1-based number or a combo name.
func (c Config) PaletteIndex() (int, error) {
	if n, err := strconv.Atoi(c.Palette); err == nil {
		if _, ok := palette.At(n - 1); ok {
			return n - 1, nil
		}
		return 0, fmt.Errorf("%w: palette %d out of range 1..%d", ErrInvalid, n, palette.Len())
	}
	if i := palette.Index(c.Palette); i >= 0 {
		return i, nil
	}
	return 0, fmt.Errorf("%w: unknown palette %q", ErrInvalid, c.Palette)
}

// Validate reports every problem with c.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Width > 0 && c.Height > 0, "window size %dx%d", c.Width, c.Height)
	check(c.Nodes >= 0, "nodes %d is negative", c.Nodes)
	check(c.Nodes <= 10000, "nodes %d exceeds 10000", c.Nodes)
	check(c.OuterBuffer >= 0, "outer buffer %v is negative", c.OuterBuffer)
	check(c.MaxEffectDist >= 0, "effect distance %v is negative", c.MaxEffectDist)
	check(c.Speed >= 0, "speed %v is negative", c.Speed)
	check(c.RadiusMin > 0 && c.RadiusMin <= c.RadiusMax, "radius range [%v, %v)", c.RadiusMin, c.RadiusMax)
	check(c.Transition >= 0, "transition %v is negative", c.Transition)
	if _, err := c.PaletteIndex(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
