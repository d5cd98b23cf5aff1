// Package motion moves the mesh points: a constant-speed heading, a gentle
// steering nudge near the pointer, and a teleport wrap around the buffered
// viewport.
package motion

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/mesh-gradient/internal/geom"
)

// Params are the motion tunables shared by every node of a simulation.
type Params struct {
	// OuterBuffer is how far past each viewport edge a node may travel
	// before it wraps to the opposite side.
	OuterBuffer float64
	// MaxEffectDist is the pointer influence radius.
	MaxEffectDist float64
	// RotationSpeed is the largest heading change, in degrees, the pointer
	// can cause in one step.
	RotationSpeed float64
	// MinDT floors the step size so collapsed frame timing still moves nodes.
	MinDT float64
}

// Node is one moving mesh point.
type Node struct {
	Pos     geom.Vec
	Heading float64 // degrees, [0, 360)
	Speed   float64
	Radius  float64
}

// Direction returns the vector the steering rule compares against the
// pointer offset. It trails the travel direction by a quarter turn.
func (n *Node) Direction() geom.Vec {
	return geom.Unit(n.Heading - 90)
}

// Advance moves n one step. pointer is nil when no pointer is held down.
func Advance(n *Node, pointer *geom.Vec, dt float64, p Params, vp geom.Viewport) {
	if dt < p.MinDT || math.IsNaN(dt) {
		dt = p.MinDT
	}

	if pointer != nil {
		n.Heading += Steer(n, *pointer, p)
	}
	if math.IsNaN(n.Heading) || math.IsInf(n.Heading, 0) {
		n.Heading = 0
	}
	n.Heading = geom.WrapDeg(n.Heading)

	n.Pos = n.Pos.Add(geom.Unit(n.Heading).Scale(n.Speed * dt))
	wrap(n, p.OuterBuffer, vp)
}

// Steer returns the heading change, in degrees, the pointer at ptr applies
// to n. It is zero outside MaxEffectDist and never exceeds RotationSpeed in
// magnitude.
func Steer(n *Node, ptr geom.Vec, p Params) float64 {
	if p.MaxEffectDist <= 0 {
		return 0
	}
	d := n.Pos.Dist(ptr)
	if !(d < p.MaxEffectDist) {
		return 0
	}
	influence := (p.MaxEffectDist - d) / p.MaxEffectDist
	dot := geom.Clamp(n.Direction().Dot(ptr.Sub(n.Pos)), -1, 1)
	return p.RotationSpeed * influence * dot
}

func wrap(n *Node, buffer float64, vp geom.Viewport) {
	lo, hi := vp.Buffered(buffer)

	switch {
	case math.IsNaN(n.Pos.X):
		n.Pos.X = lo.X
	case n.Pos.X < lo.X:
		n.Pos.X = hi.X
	case n.Pos.X > hi.X:
		n.Pos.X = lo.X
	}

	switch {
	case math.IsNaN(n.Pos.Y):
		n.Pos.Y = lo.Y
	case n.Pos.Y < lo.Y:
		n.Pos.Y = hi.Y
	case n.Pos.Y > hi.Y:
		n.Pos.Y = lo.Y
	}
}

// SpawnOptions describe how fresh nodes are laid out.
type SpawnOptions struct {
	Speed     float64
	RadiusMin float64
	RadiusMax float64
}

// Spawn creates count nodes scattered uniformly over the buffered viewport,
// each with a random heading and a render radius in [RadiusMin, RadiusMax).
func Spawn(count int, rng *rand.Rand, opts SpawnOptions, buffer float64, vp geom.Viewport) []Node {
	lo, hi := vp.Buffered(buffer)
	nodes := make([]Node, count)
	for i := range nodes {
		nodes[i] = Node{
			Pos: geom.Vec{
				X: lo.X + rng.Float64()*(hi.X-lo.X),
				Y: lo.Y + rng.Float64()*(hi.Y-lo.Y),
			},
			Heading: float64(rng.Intn(360)),
			Speed:   opts.Speed,
			Radius:  opts.RadiusMin + rng.Float64()*(opts.RadiusMax-opts.RadiusMin),
		}
	}
	return nodes
}
