package sim

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/mesh-gradient/internal/geom"
	"github.com/iburimskiy/mesh-gradient/internal/mesh"
	"github.com/iburimskiy/mesh-gradient/internal/motion"
	"github.com/iburimskiy/mesh-gradient/internal/palette"
	"github.com/iburimskiy/mesh-gradient/internal/scene"
)

type recorder struct {
	names  []string
	counts map[string]int
}

func (r *recorder) Render(c *scene.Collection) {
	if r.counts == nil {
		r.counts = map[string]int{}
	}
	r.names = append(r.names, c.Name)
	r.counts[c.Name] = c.Len()
}

func newTestSim(t *testing.T, mutate func(*Options)) (*Simulation, *geom.Viewport) {
	t.Helper()
	vp := &geom.Viewport{Width: 640, Height: 480}
	opts := Options{
		Nodes: 50,
		Motion: motion.Params{
			OuterBuffer:   120,
			MaxEffectDist: 225,
			RotationSpeed: 4,
			MinDT:         0.01,
		},
		Spawn:       motion.SpawnOptions{Speed: 0.045, RadiusMin: 1.75, RadiusMax: 3.25},
		Transition:  time.Second,
		Markers:     true,
		MarkerColor: geom.RGBA(255, 255, 255, 0.4),
		EdgeColor:   geom.RGB(0, 0, 0),
		Viewport:    func() geom.Viewport { return *vp },
		Rand:        rand.New(rand.NewSource(42)),
	}
	if mutate != nil {
		mutate(&opts)
	}
	return New(opts), vp
}

func TestTickFillsCollections(t *testing.T) {
	s, _ := newTestSim(t, nil)
	s.Tick(1)

	var r recorder
	s.Render(&r)
	assert.Equal(t, []string{"triangles", "lines", "markers"}, r.names)
	assert.Equal(t, s.Stats().Triangles, r.counts["triangles"])
	assert.Positive(t, r.counts["triangles"])
	assert.Equal(t, 0, r.counts["lines"])
	assert.Equal(t, 50, r.counts["markers"])
	assert.Equal(t, uint64(1), s.Stats().Ticks)
	assert.NoError(t, s.Stats().LastErr)
}

func TestTickReplacesPreviousFrame(t *testing.T) {
	s, _ := newTestSim(t, nil)
	s.Tick(1)
	s.Tick(1)

	var r recorder
	s.Render(&r)
	// 54 points with the 4 corners as hull give at most 2*54-2-4 triangles.
	assert.LessOrEqual(t, r.counts["triangles"], 2*54-2-4)
	assert.Positive(t, r.counts["triangles"])
	assert.Equal(t, 50, r.counts["markers"])
}

func TestDebugAndMarkerToggles(t *testing.T) {
	s, _ := newTestSim(t, nil)
	s.SetDebug(true)
	s.SetMarkers(false)
	assert.True(t, s.Debug())
	assert.False(t, s.Markers())
	s.Tick(1)

	var r recorder
	s.Render(&r)
	assert.Equal(t, 3*r.counts["triangles"], r.counts["lines"])
	assert.Equal(t, 0, r.counts["markers"])
}

func TestViewportReadEveryTick(t *testing.T) {
	s, vp := newTestSim(t, nil)
	vp.Width, vp.Height = 100, 80
	s.Tick(1)
	lo, hi := vp.Buffered(120)
	for _, n := range s.Nodes() {
		assert.True(t, n.Pos.X >= lo.X && n.Pos.X <= hi.X)
		assert.True(t, n.Pos.Y >= lo.Y && n.Pos.Y <= hi.Y)
	}
}

func TestStopHaltsTicks(t *testing.T) {
	s, _ := newTestSim(t, nil)
	s.Tick(1)
	before := append([]motion.Node(nil), s.Nodes()...)

	s.Stop()
	s.Stop()
	assert.True(t, s.Stopped())
	s.Tick(1)

	assert.Equal(t, before, s.Nodes())
	assert.Equal(t, uint64(1), s.Stats().Ticks)
}

func TestPointerSnapshotIsCopied(t *testing.T) {
	s, _ := newTestSim(t, nil)
	p := geom.V(10, 20)
	s.SetPointer(&p)
	p.X = 99
	require.NotNil(t, s.Pointer())
	assert.Equal(t, geom.V(10, 20), *s.Pointer())

	s.SetPointer(nil)
	assert.Nil(t, s.Pointer())
}

func TestPointerSteersNearbyNodes(t *testing.T) {
	s, _ := newTestSim(t, func(o *Options) { o.Nodes = 1 })
	n := &s.Nodes()[0]
	n.Pos = geom.V(300, 200)
	n.Heading = 90

	ptr := geom.V(310, 200)
	s.SetPointer(&ptr)
	s.Tick(1)
	assert.Greater(t, s.Nodes()[0].Heading, 90.0)
}

func TestComboSwitchRunsWithTicks(t *testing.T) {
	var switched []int
	s, _ := newTestSim(t, nil)
	s.OnSwitch = func(i int) { switched = append(switched, i) }

	s.RequestCombo(4)
	s.RequestCombo(0) // queued
	s.RequestCombo(palette.Len())
	s.RequestCombo(-3)
	assert.Equal(t, []int{4}, switched)

	for i := 0; i < 200 && s.Transition().Transitioning(); i++ {
		s.Tick(1)
	}
	assert.Equal(t, []int{4, 0}, switched)

	want, _ := palette.At(0)
	from, to := s.Transition().Colors()
	assert.Equal(t, want.From, from)
	assert.Equal(t, want.To, to)
}

func TestCycleCombo(t *testing.T) {
	var switched []int
	s, _ := newTestSim(t, func(o *Options) { o.StartCombo = 2 })
	s.OnSwitch = func(i int) { switched = append(switched, i) }
	s.CycleCombo(1)
	assert.Equal(t, []int{3}, switched)
}

func TestTriangulatorFailureDoesNotBreakTicks(t *testing.T) {
	fail := true
	tri := mesh.TriangulatorFunc(func(pts []geom.Vec) ([][3]int, error) {
		if fail {
			return nil, errors.New("nope")
		}
		return mesh.Delaunay{}.Triangulate(pts)
	})
	s, _ := newTestSim(t, func(o *Options) { o.Triangulator = tri })

	s.Tick(1)
	assert.Error(t, s.Stats().LastErr)
	assert.Equal(t, 0, s.Stats().Triangles)

	fail = false
	s.Tick(1)
	assert.NoError(t, s.Stats().LastErr)
	assert.Positive(t, s.Stats().Triangles)
}
