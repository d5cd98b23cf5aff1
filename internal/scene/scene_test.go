package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/mesh-gradient/internal/geom"
)

func TestCollectionAddEmpty(t *testing.T) {
	c := NewCollection("triangles")
	assert.Equal(t, "triangles", c.Name)
	assert.Equal(t, 0, c.Len())

	c.Add(Polygon{Fill: geom.RGB(1, 2, 3)})
	c.Add(Line{Color: geom.RGB(0, 0, 0)})
	c.Add(Circle{Radius: 2})
	assert.Equal(t, 3, c.Len())
	assert.IsType(t, Line{}, c.Items()[1])

	c.Empty()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Items())

	c.Add(Circle{Radius: 5})
	assert.Equal(t, []Primitive{Circle{Radius: 5}}, c.Items())
}
