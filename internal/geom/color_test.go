package geom

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorLerp(t *testing.T) {
	from, to := RGB(0, 100, 200), RGB(100, 50, 0)
	assert.Equal(t, from, from.Lerp(to, 0))
	assert.Equal(t, to, from.Lerp(to, 1))
	assert.Equal(t, RGB(50, 75, 100), from.Lerp(to, 0.5))
}

func TestColorChannelMath(t *testing.T) {
	c := RGBA(10, 20, 30, 0.5)
	assert.Equal(t, RGBA(11, 22, 33, 0.5), c.Add(RGB(1, 2, 3)))
	assert.Equal(t, RGBA(9, 18, 27, 0.5), c.Sub(RGB(1, 2, 3)))
	assert.Equal(t, RGBA(5, 10, 15, 0.5), c.Scale(0.5))
}

func TestNRGBARoundsAndClamps(t *testing.T) {
	got := Color{R: 12.6, G: -4, B: 300, A: 0.4}.NRGBA()
	assert.Equal(t, color.NRGBA{R: 13, G: 0, B: 255, A: 102}, got)
}

func TestFloatsPremultiplied(t *testing.T) {
	r, g, b, a := RGBA(255, 0, 127.5, 0.5).Floats()
	assert.InDelta(t, 0.5, r, 1e-6)
	assert.InDelta(t, 0, g, 1e-6)
	assert.InDelta(t, 0.25, b, 1e-6)
	assert.InDelta(t, 0.5, a, 1e-6)
}
