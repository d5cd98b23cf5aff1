// Package game hosts the simulation in an ebiten window: it feeds pointer
// and keyboard input in, ticks the frame driver once per update and draws
// the submitted scene.
package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/mesh-gradient/internal/audio"
	"github.com/iburimskiy/mesh-gradient/internal/config"
	"github.com/iburimskiy/mesh-gradient/internal/geom"
	"github.com/iburimskiy/mesh-gradient/internal/input"
	"github.com/iburimskiy/mesh-gradient/internal/mesh"
	"github.com/iburimskiy/mesh-gradient/internal/motion"
	"github.com/iburimskiy/mesh-gradient/internal/sim"
	"github.com/iburimskiy/mesh-gradient/internal/snapshot"
)

// maxTickRatio caps the step after a stall so nodes do not jump.
const maxTickRatio = 4

var digitKeys = map[ebiten.Key]rune{
	ebiten.KeyDigit0: '0', ebiten.KeyNumpad0: '0',
	ebiten.KeyDigit1: '1', ebiten.KeyNumpad1: '1',
	ebiten.KeyDigit2: '2', ebiten.KeyNumpad2: '2',
	ebiten.KeyDigit3: '3', ebiten.KeyNumpad3: '3',
	ebiten.KeyDigit4: '4', ebiten.KeyNumpad4: '4',
	ebiten.KeyDigit5: '5', ebiten.KeyNumpad5: '5',
	ebiten.KeyDigit6: '6', ebiten.KeyNumpad6: '6',
	ebiten.KeyDigit7: '7', ebiten.KeyNumpad7: '7',
	ebiten.KeyDigit8: '8', ebiten.KeyNumpad8: '8',
	ebiten.KeyDigit9: '9', ebiten.KeyNumpad9: '9',
}

type saveResult struct {
	path string
	err  error
}

// Game implements ebiten.Game.
type Game struct {
	cfg   config.Config
	combo int

	sim   *sim.Simulation
	chime *audio.Chime
	saver *snapshot.Saver

	// viewport, in device pixels
	width, height int
	ratio         float64

	pointer input.Pointer
	keys    []ebiten.Key

	last    time.Time
	started time.Time

	showHUD      bool
	wantSnapshot bool
	saving       bool
	saved        chan saveResult
	lastSaved    string
	lastErr      error
}

// New prepares a game for cfg. The simulation itself is created on the first
// update, once the window size and device scale are known.
func New(cfg config.Config) (*Game, error) {
	combo, err := cfg.PaletteIndex()
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		combo:   combo,
		saver:   snapshot.New(snapshot.DialogPath),
		saved:   make(chan saveResult, 1),
		ratio:   1,
		started: time.Now(),
		showHUD: cfg.Debug,
	}
	if !cfg.Mute {
		g.chime = audio.NewChime(config.ChimeSampleRate, config.ChimeDuration, config.ChimeVolume)
		if err := g.chime.Init(); err != nil {
			// Non-fatal, the mesh runs silent
			logger().Warn("audio initialization failed", "err", err)
			g.chime = nil
		}
	}
	return g, nil
}

func (g *Game) viewport() geom.Viewport {
	return geom.Viewport{Width: float64(g.width), Height: float64(g.height)}
}

func (g *Game) newSim() *sim.Simulation {
	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := g.ratio
	s := sim.New(sim.Options{
		Nodes: g.cfg.Nodes,
		Motion: motion.Params{
			OuterBuffer:   g.cfg.OuterBuffer,
			MaxEffectDist: g.cfg.MaxEffectDist * r,
			RotationSpeed: g.cfg.RotationSpeed,
			MinDT:         config.MinDT,
		},
		Spawn: motion.SpawnOptions{
			Speed:     g.cfg.Speed * r,
			RadiusMin: g.cfg.RadiusMin * r,
			RadiusMax: g.cfg.RadiusMax * r,
		},
		StartCombo:   g.combo,
		Transition:   g.cfg.Transition,
		Triangulator: mesh.Delaunay{},
		Debug:        g.cfg.Debug,
		Markers:      g.cfg.Markers,
		MarkerColor:  config.MarkerColor,
		EdgeColor:    config.EdgeColor,
		Viewport:     g.viewport,
		Rand:         rand.New(rand.NewSource(seed)),
	})
	if g.chime != nil {
		s.OnSwitch = g.chime.Play
	}
	return s
}

func (g *Game) Update() error {
	if g.width == 0 || g.height == 0 {
		return nil
	}
	if g.sim == nil {
		g.sim = g.newSim()
		g.last = time.Now()
	}

	select {
	case res := <-g.saved:
		g.saving = false
		g.lastErr = res.err
		if res.path != "" {
			g.lastSaved = res.path
			logger().Info("snapshot saved", "path", res.path)
		}
	default:
	}

	if g.handleKeys() {
		g.Stop()
		return ebiten.Termination
	}
	g.handlePointer()

	now := time.Now()
	p := float64(now.Sub(g.last)) / float64(sim.FrameTime)
	g.last = now
	g.sim.Tick(min(p, maxTickRatio))

	if err := g.sim.Stats().LastErr; err != nil {
		logger().Debug("frame had no mesh", "err", err)
	}
	return nil
}

// handleKeys applies this update's key presses and reports whether to quit.
func (g *Game) handleKeys() bool {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if r, ok := digitKeys[k]; ok {
			if i, ok := input.ComboForDigit(r); ok {
				g.sim.RequestCombo(i)
			}
			continue
		}
		switch k {
		case ebiten.KeyArrowRight, ebiten.KeyArrowDown:
			g.sim.CycleCombo(1)
		case ebiten.KeyArrowLeft, ebiten.KeyArrowUp:
			g.sim.CycleCombo(-1)
		case ebiten.KeyD:
			g.sim.SetDebug(!g.sim.Debug())
		case ebiten.KeyM:
			g.sim.SetMarkers(!g.sim.Markers())
		case ebiten.KeyH:
			g.showHUD = !g.showHUD
		case ebiten.KeyS:
			if !g.saving {
				g.wantSnapshot = true
			}
		case ebiten.KeyEscape, ebiten.KeyQ:
			return true
		}
	}
	return false
}

// handlePointer follows the left mouse button, or the first touch when the
// mouse is idle. Layout already scales cursor positions to device pixels.
func (g *Game) handlePointer() {
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		g.pointer.Down(float64(x), float64(y), 1)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		g.pointer.Move(float64(x), float64(y), 1)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pointer.Up()
	default:
		touches := ebiten.AppendTouchIDs(nil)
		if len(touches) == 0 {
			g.pointer.Up()
			break
		}
		x, y := ebiten.TouchPosition(touches[0])
		if inpututil.IsTouchJustReleased(touches[0]) {
			g.pointer.Up()
			break
		}
		if g.pointer.Position() == nil {
			g.pointer.Down(float64(x), float64(y), 1)
		} else {
			g.pointer.Move(float64(x), float64(y), 1)
		}
	}
	g.sim.SetPointer(g.pointer.Position())
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.sim == nil {
		return
	}
	g.sim.Render(&imageRenderer{dst: screen})

	if g.wantSnapshot {
		g.wantSnapshot = false
		g.startSnapshot(screen)
	}
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// startSnapshot copies the frame and runs the blocking save dialog off the
// update goroutine.
func (g *Game) startSnapshot(screen *ebiten.Image) {
	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)
	img := snapshot.FromPremultiplied(pix, b.Dx(), b.Dy())

	g.saving = true
	go func() {
		path, err := g.saver.Save(img)
		g.saved <- saveResult{path: path, err: err}
	}()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ratio = ebiten.Monitor().DeviceScaleFactor()
	g.width = int(float64(outsideWidth) * g.ratio)
	g.height = int(float64(outsideHeight) * g.ratio)
	return g.width, g.height
}

// Stop halts the simulation and silences audio; the window keeps its last
// frame.
func (g *Game) Stop() {
	if g.sim != nil {
		g.sim.Stop()
	}
	if g.chime != nil {
		g.chime.Stop()
	}
}
