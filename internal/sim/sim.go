// Package sim is the frame driver. Each Tick advances the colour transition
// and every node, rebuilds the mesh and replaces the contents of the scene
// collections a renderer draws from.
package sim

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/iburimskiy/mesh-gradient/internal/geom"
	"github.com/iburimskiy/mesh-gradient/internal/mesh"
	"github.com/iburimskiy/mesh-gradient/internal/motion"
	"github.com/iburimskiy/mesh-gradient/internal/palette"
	"github.com/iburimskiy/mesh-gradient/internal/scene"
)

// FrameTime is the duration that a tick ratio of 1 stands for.
const FrameTime = time.Second / 60

const historySize = 120

// Options configure a Simulation.
type Options struct {
	Nodes      int
	Motion     motion.Params
	Spawn      motion.SpawnOptions
	StartCombo int
	Transition time.Duration

	Triangulator mesh.Triangulator
	Debug        bool
	Markers      bool
	MarkerColor  geom.Color
	EdgeColor    geom.Color

	// Viewport is read at the start of every tick. It must not be nil.
	Viewport func() geom.Viewport
	Rand     *rand.Rand
}

// Stats describe the last completed tick.
type Stats struct {
	Ticks     uint64
	Triangles int
	Elapsed   time.Duration
	// MeanElapsed averages Elapsed over the recent ticks.
	MeanElapsed time.Duration
	LastErr     error
}

// Simulation owns the nodes, the colour transition and the output
// collections. Apart from SetPointer, which may be called from any goroutine,
// its methods must be called from the tick goroutine.
type Simulation struct {
	opts  Options
	nodes []motion.Node
	trans *palette.Transition

	pointer atomic.Pointer[geom.Vec]
	stopped atomic.Bool

	triangles *scene.Collection
	lines     *scene.Collection
	markers   *scene.Collection

	// OnSwitch, when set, is called with the combo index each time a
	// transition starts.
	OnSwitch func(combo int)

	stats   Stats
	history *tickHistory
}

// New spawns the nodes over the initial viewport and returns an idle
// simulation on opts.StartCombo.
func New(opts Options) *Simulation {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Triangulator == nil {
		opts.Triangulator = mesh.Delaunay{}
	}
	vp := opts.Viewport()
	s := &Simulation{
		opts:      opts,
		nodes:     motion.Spawn(opts.Nodes, opts.Rand, opts.Spawn, opts.Motion.OuterBuffer, vp),
		trans:     palette.NewTransition(opts.StartCombo, opts.Transition),
		triangles: scene.NewCollection("triangles"),
		lines:     scene.NewCollection("lines"),
		markers:   scene.NewCollection("markers"),
		history:   newTickHistory(historySize),
	}
	logger().Info("simulation created",
		"nodes", opts.Nodes,
		"viewport", vp,
		"combo", s.trans.Current(),
	)
	return s
}

// SetPointer records the pointer position in simulation space, or clears it
// when p is nil. The value is read once at the start of the next tick.
func (s *Simulation) SetPointer(p *geom.Vec) {
	if p != nil {
		v := *p
		p = &v
	}
	s.pointer.Store(p)
}

// Pointer returns the current pointer snapshot.
func (s *Simulation) Pointer() *geom.Vec { return s.pointer.Load() }

// RequestCombo asks for combo i. Out-of-range indices are ignored.
func (s *Simulation) RequestCombo(i int) {
	if _, ok := palette.At(i); !ok {
		logger().Debug("ignoring combo request", "index", i)
		return
	}
	prev := s.switchMark()
	s.trans.Request(i)
	s.notifySwitch(prev)
}

// CycleCombo moves step combos along the table.
func (s *Simulation) CycleCombo(step int) {
	prev := s.switchMark()
	s.trans.Cycle(step)
	s.notifySwitch(prev)
}

// Tick advances the simulation by p frames. p is floored at the motion
// MinDT. A stopped simulation ignores ticks.
func (s *Simulation) Tick(p float64) {
	if s.stopped.Load() {
		return
	}
	start := time.Now()
	if math.IsNaN(p) {
		p = 0
	}
	dt := max(p, s.opts.Motion.MinDT)

	ptr := s.pointer.Load()
	vp := s.opts.Viewport()

	prev := s.switchMark()
	s.trans.Step(time.Duration(dt * float64(FrameTime)))
	s.notifySwitch(prev)

	for i := range s.nodes {
		motion.Advance(&s.nodes[i], ptr, dt, s.opts.Motion, vp)
	}

	frame := mesh.BuildFrame(s.nodes, vp, s.trans.Gradient(), mesh.Options{
		OuterBuffer:  s.opts.Motion.OuterBuffer,
		Triangulator: s.opts.Triangulator,
		Debug:        s.opts.Debug,
	})
	s.submit(&frame)

	s.stats.Ticks++
	s.stats.Triangles = len(frame.Triangles)
	s.stats.LastErr = frame.Err
	s.stats.Elapsed = time.Since(start)
	s.history.record(s.stats.Elapsed)
}

func (s *Simulation) submit(f *mesh.Frame) {
	s.triangles.Empty()
	s.lines.Empty()
	s.markers.Empty()

	for _, t := range f.Triangles {
		s.triangles.Add(scene.Polygon{Points: t.Points, Fill: t.Fill})
	}
	for _, e := range f.Edges {
		s.lines.Add(scene.Line{From: e.From, To: e.To, Color: s.opts.EdgeColor})
	}
	if s.opts.Markers {
		for i := range s.nodes {
			n := &s.nodes[i]
			s.markers.Add(scene.Circle{Center: n.Pos, Radius: n.Radius, Fill: s.opts.MarkerColor})
		}
	}
}

// mark is the transition state before a call that may start a transition.
type mark struct {
	current int
	active  bool
}

func (s *Simulation) switchMark() mark {
	return mark{current: s.trans.Current(), active: s.trans.Transitioning()}
}

// notifySwitch fires OnSwitch if a transition started since prev was taken,
// including a queued request that began when the previous one finished.
func (s *Simulation) notifySwitch(prev mark) {
	started := s.trans.Transitioning() && (!prev.active || s.trans.Current() != prev.current)
	if !started {
		return
	}
	logger().Debug("palette transition started", "from", prev.current, "to", s.trans.Current())
	if s.OnSwitch != nil {
		s.OnSwitch(s.trans.Current())
	}
}

// Render hands the collections to r in drawing order.
func (s *Simulation) Render(r scene.Renderer) {
	r.Render(s.triangles)
	r.Render(s.lines)
	r.Render(s.markers)
}

// Stop halts the simulation. Later ticks do nothing; the last submitted
// collections stay as they were.
func (s *Simulation) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		logger().Info("simulation stopped", "ticks", s.stats.Ticks)
	}
}

// Stopped reports whether Stop was called.
func (s *Simulation) Stopped() bool { return s.stopped.Load() }

// SetDebug toggles triangle edge output.
func (s *Simulation) SetDebug(on bool) { s.opts.Debug = on }

// Debug reports whether triangle edges are drawn.
func (s *Simulation) Debug() bool { return s.opts.Debug }

// SetMarkers toggles node marker output.
func (s *Simulation) SetMarkers(on bool) { s.opts.Markers = on }

// Markers reports whether node markers are drawn.
func (s *Simulation) Markers() bool { return s.opts.Markers }

// Nodes exposes the live nodes.
func (s *Simulation) Nodes() []motion.Node { return s.nodes }

// Transition exposes the colour state.
func (s *Simulation) Transition() *palette.Transition { return s.trans }

// Stats returns figures for the last tick.
func (s *Simulation) Stats() Stats {
	st := s.stats
	st.MeanElapsed = s.history.mean()
	return st
}
