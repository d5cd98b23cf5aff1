// Package palette holds the fixed table of gradient colour combos and the
// state machine that morphs the live gradient from one combo to another.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/mesh-gradient/internal/geom"
)

// Combo is one entry of the palette table: the colour at the top of the
// viewport and the colour at the bottom.
type Combo struct {
	Name     string
	From, To geom.Color
}

var comboHex = []struct {
	name, from, to string
}{
	{"lagoon", "#9edbe6", "#0e7b8f"},
	{"surf", "#ffffff", "#0e7b8f"},
	{"ink", "#ffffff", "#000000"},
	{"dusk", "#eea47f", "#00539c"},
	{"candy", "#89ace3", "#ea738d"},
	{"harbour", "#fbf8be", "#234f70"},
	{"sky", "#add8e6", "#00008b"},
	{"bee", "#e8c93f", "#000000"},
	{"fern", "#ffffff", "#0a5711"},
}

var combos = mustParse()

func mustParse() []Combo {
	out := make([]Combo, len(comboHex))
	for i, c := range comboHex {
		from, err := parseHex(c.from)
		if err != nil {
			panic(fmt.Sprintf("palette %q: %v", c.name, err))
		}
		to, err := parseHex(c.to)
		if err != nil {
			panic(fmt.Sprintf("palette %q: %v", c.name, err))
		}
		out[i] = Combo{Name: c.name, From: from, To: to}
	}
	return out
}

func parseHex(s string) (geom.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return geom.Color{}, err
	}
	r, g, b := c.RGB255()
	return geom.RGB(float64(r), float64(g), float64(b)), nil
}

// Len returns the number of combos in the table.
func Len() int { return len(combos) }

// At returns combo i and whether i is in range.
func At(i int) (Combo, bool) {
	if i < 0 || i >= len(combos) {
		return Combo{}, false
	}
	return combos[i], true
}

// All returns a copy of the table.
func All() []Combo {
	return append([]Combo(nil), combos...)
}

// Index returns the position of the combo called name, or -1.
func Index(name string) int {
	for i, c := range combos {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Perceptual blends the endpoints of c in CIE L*a*b* space, which avoids the
// muddy midpoints of a straight RGB blend. Used for the HUD swatch only; the
// mesh shading stays on the linear RGB path.
func (c Combo) Perceptual(t float64) geom.Color {
	a := colorful.Color{R: c.From.R / 255, G: c.From.G / 255, B: c.From.B / 255}
	b := colorful.Color{R: c.To.R / 255, G: c.To.G / 255, B: c.To.B / 255}
	r, g, bl := a.BlendLab(b, geom.Clamp(t, 0, 1)).Clamped().RGB255()
	return geom.RGB(float64(r), float64(g), float64(bl))
}
