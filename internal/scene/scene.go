// Package scene describes what the simulation asks a renderer to draw: plain
// primitive values grouped into named collections that are emptied and
// refilled every frame.
package scene

import "github.com/iburimskiy/mesh-gradient/internal/geom"

// Primitive is one of Polygon, Line or Circle.
type Primitive interface {
	primitive()
}

// Polygon is a filled triangle.
type Polygon struct {
	Points [3]geom.Vec
	Fill   geom.Color
}

// Line is a hairline segment.
type Line struct {
	From, To geom.Vec
	Color    geom.Color
}

// Circle is a filled disc.
type Circle struct {
	Center geom.Vec
	Radius float64
	Fill   geom.Color
}

func (Polygon) primitive() {}
func (Line) primitive()    {}
func (Circle) primitive()  {}

// Collection is an ordered group of primitives.
type Collection struct {
	Name  string
	items []Primitive
}

// NewCollection returns an empty collection called name.
func NewCollection(name string) *Collection {
	return &Collection{Name: name}
}

// Add appends p.
func (c *Collection) Add(p Primitive) { c.items = append(c.items, p) }

// Empty drops every held primitive, keeping the backing storage for the
// next frame.
func (c *Collection) Empty() {
	clear(c.items)
	c.items = c.items[:0]
}

// Len returns the number of held primitives.
func (c *Collection) Len() int { return len(c.items) }

// Items returns the held primitives. The slice is only valid until the next
// Add or Empty.
func (c *Collection) Items() []Primitive { return c.items }

// Renderer draws collections onto some surface.
type Renderer interface {
	Render(c *Collection)
}
