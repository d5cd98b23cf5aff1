// Package mesh derives the shaded triangle mesh for one frame from the
// current node positions.
package mesh

import (
	"github.com/iburimskiy/mesh-gradient/internal/geom"
	"github.com/iburimskiy/mesh-gradient/internal/motion"
	"github.com/iburimskiy/mesh-gradient/internal/palette"
)

// CornerCount is the number of fixed frame-corner points placed ahead of the
// nodes in every frame's point list.
const CornerCount = 4

// Options configure BuildFrame.
type Options struct {
	OuterBuffer  float64
	Triangulator Triangulator
	// Debug additionally records the three edges of every triangle.
	Debug bool
}

// Triangle is one shaded mesh face.
type Triangle struct {
	Index  [3]int
	Points [3]geom.Vec
	Fill   geom.Color
}

// Edge is a triangle side recorded in debug mode.
type Edge struct {
	From, To geom.Vec
}

// Frame is the mesh for a single tick. Nothing in it outlives the tick.
type Frame struct {
	// Points holds the corners followed by the node positions.
	Points    []geom.Vec
	Triangles []Triangle
	Edges     []Edge
	// Err is the triangulator error, if any. The frame then has no triangles.
	Err error
}

// Corners returns the buffered viewport corners in the order top-left,
// bottom-left, top-right, bottom-right.
func Corners(vp geom.Viewport, buffer float64) [CornerCount]geom.Vec {
	lo, hi := vp.Buffered(buffer)
	return [CornerCount]geom.Vec{
		{X: lo.X, Y: lo.Y},
		{X: lo.X, Y: hi.Y},
		{X: hi.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},
	}
}

// BuildFrame triangulates the corners plus the node positions and colours
// each triangle by where its centroid sits vertically: ratio 0 at the top of
// the viewport takes grad.From, ratio 1 at the bottom takes grad.To.
//
// Triangles that name a point index outside the point list are skipped.
// A triangulator error produces a frame with no triangles.
func BuildFrame(nodes []motion.Node, vp geom.Viewport, grad palette.Gradient, opts Options) Frame {
	corners := Corners(vp, opts.OuterBuffer)
	points := make([]geom.Vec, 0, CornerCount+len(nodes))
	points = append(points, corners[:]...)
	for i := range nodes {
		points = append(points, nodes[i].Pos)
	}

	f := Frame{Points: points}
	if opts.Triangulator == nil {
		return f
	}

	tris, err := opts.Triangulator.Triangulate(points)
	if err != nil {
		logger().Debug("triangulation failed", "points", len(points), "err", err)
		f.Err = err
		return f
	}

	f.Triangles = make([]Triangle, 0, len(tris))
	if opts.Debug {
		f.Edges = make([]Edge, 0, 3*len(tris))
	}
	skipped := 0
	for _, idx := range tris {
		if !inRange(idx, len(points)) {
			skipped++
			continue
		}
		a, b, c := points[idx[0]], points[idx[1]], points[idx[2]]
		f.Triangles = append(f.Triangles, Triangle{
			Index:  idx,
			Points: [3]geom.Vec{a, b, c},
			Fill:   grad.Sample(Ratio(a, b, c, vp.Height)),
		})
		if opts.Debug {
			f.Edges = append(f.Edges, Edge{a, b}, Edge{b, c}, Edge{c, a})
		}
	}
	if skipped > 0 {
		logger().Debug("skipped malformed triangles", "count", skipped)
	}
	return f
}

// Ratio returns the centroid height of abc clamped to [0, height] and
// divided by height.
func Ratio(a, b, c geom.Vec, height float64) float64 {
	if height <= 0 {
		return 0
	}
	avgY := geom.Clamp((a.Y+b.Y+c.Y)/3, 0, height)
	return avgY / height
}

// Area sums the triangle areas of the frame.
func (f *Frame) Area() float64 {
	var sum float64
	for _, t := range f.Triangles {
		sum += geom.TriangleArea(t.Points[0], t.Points[1], t.Points[2])
	}
	return sum
}

func inRange(idx [3]int, n int) bool {
	for _, i := range idx {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}
