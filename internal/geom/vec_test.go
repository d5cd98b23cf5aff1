package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecArithmetic(t *testing.T) {
	a, b := V(3, 4), V(1, -2)
	assert.Equal(t, V(4, 2), a.Add(b))
	assert.Equal(t, V(2, 6), a.Sub(b))
	assert.Equal(t, V(6, 8), a.Scale(2))
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Len())
	assert.InDelta(t, math.Hypot(2, 6), a.Dist(b), 1e-12)
}

func TestRotateMatchesUnit(t *testing.T) {
	for _, deg := range []float64{0, 45, 90, 180, 270, 333} {
		r := V(1, 0).Rotate(deg)
		u := Unit(deg)
		assert.InDelta(t, u.X, r.X, 1e-12, "deg %v", deg)
		assert.InDelta(t, u.Y, r.Y, 1e-12, "deg %v", deg)
		assert.InDelta(t, 1, r.Len(), 1e-12)
	}
}

func TestWrapDeg(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-720, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, WrapDeg(tt.in), 1e-9, "in %v", tt.in)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
	assert.Equal(t, 1.0, Clamp(7, -1, 1))
	assert.Equal(t, 0.25, Clamp(0.25, -1, 1))
}

func TestFinite(t *testing.T) {
	assert.True(t, V(1, 2).Finite())
	assert.False(t, V(math.NaN(), 0).Finite())
	assert.False(t, V(0, math.Inf(-1)).Finite())
}

func TestTriangleArea(t *testing.T) {
	assert.Equal(t, 6.0, TriangleArea(V(0, 0), V(4, 0), V(0, 3)))
	assert.Equal(t, 6.0, TriangleArea(V(0, 0), V(0, 3), V(4, 0)))
	assert.Equal(t, 0.0, TriangleArea(V(0, 0), V(1, 1), V(2, 2)))
}
