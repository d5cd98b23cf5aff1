package mesh

import (
	"errors"
	"fmt"

	"github.com/fogleman/delaunay"

	"github.com/iburimskiy/mesh-gradient/internal/geom"
)

// ErrDegenerate is returned when a point set has no triangulation, such as
// fewer than three points or all points on one line.
var ErrDegenerate = errors.New("mesh: degenerate point set")

// Triangulator turns a point list into triangles given as index triples into
// that list. Implementations keep no state between calls.
type Triangulator interface {
	Triangulate(points []geom.Vec) ([][3]int, error)
}

// TriangulatorFunc adapts a plain function to Triangulator.
type TriangulatorFunc func(points []geom.Vec) ([][3]int, error)

func (f TriangulatorFunc) Triangulate(points []geom.Vec) ([][3]int, error) { return f(points) }

// Delaunay triangulates with github.com/fogleman/delaunay.
type Delaunay struct{}

func (Delaunay) Triangulate(points []geom.Vec) ([][3]int, error) {
	if len(points) < 3 {
		return nil, ErrDegenerate
	}
	pts := make([]delaunay.Point, len(points))
	for i, p := range points {
		pts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}

	out := make([][3]int, 0, len(tri.Triangles)/3)
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		out = append(out, [3]int{tri.Triangles[i], tri.Triangles[i+1], tri.Triangles[i+2]})
	}
	return out, nil
}
