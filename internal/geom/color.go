package geom

import (
	"image/color"
	"math"
)

// Color is an RGB colour with channels on the 0..255 scale and alpha on 0..1.
// Channels are float64 so transitions can carry fractional values between
// frames; they are rounded only when converted for drawing.
type Color struct {
	R, G, B float64
	A       float64
}

// RGB returns an opaque colour.
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1} }

// RGBA returns a colour with the given alpha.
func RGBA(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// Add adds the colour channels of o to c. Alpha is kept from c.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A}
}

// Sub returns the per-channel difference c - o. Alpha is kept from c.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B, A: c.A}
}

// Scale multiplies the colour channels by s. Alpha is kept.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Lerp returns c + (o - c) * t on the colour channels.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A,
	}
}

// NRGBA rounds and clamps c into an 8-bit non-premultiplied colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(Clamp(c.A, 0, 1) * 255),
	}
}

// Floats returns the channels normalised to 0..1, alpha premultiplied, the
// form ebiten vertices expect.
func (c Color) Floats() (r, g, b, a float32) {
	al := Clamp(c.A, 0, 1)
	return float32(Clamp(c.R/255, 0, 1) * al),
		float32(Clamp(c.G/255, 0, 1) * al),
		float32(Clamp(c.B/255, 0, 1) * al),
		float32(al)
}

func channel(v float64) uint8 {
	return uint8(math.Round(Clamp(v, 0, 255)))
}
