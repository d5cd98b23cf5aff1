// Package input maps raw key and pointer events onto simulation requests.
package input

import (
	"github.com/iburimskiy/mesh-gradient/internal/geom"
	"github.com/iburimskiy/mesh-gradient/internal/palette"
)

// ComboForDigit maps the digit keys 1..N, N being the palette size, to combo
// indices 0..N-1. Any other rune is rejected.
func ComboForDigit(r rune) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}
	i := int(r - '1')
	if _, ok := palette.At(i); !ok {
		return 0, false
	}
	return i, true
}

// Pointer tracks press/move/release and yields the pointer position in
// simulation space while pressed.
type Pointer struct {
	held bool
	pos  geom.Vec
}

// Down starts a press at x, y in window coordinates scaled by ratio.
func (p *Pointer) Down(x, y, ratio float64) {
	p.held = true
	p.pos = geom.V(x*ratio, y*ratio)
}

// Move updates the position while held; moves without a press are ignored.
func (p *Pointer) Move(x, y, ratio float64) {
	if !p.held {
		return
	}
	p.pos = geom.V(x*ratio, y*ratio)
}

// Up ends the press.
func (p *Pointer) Up() { p.held = false }

// Position returns the pointer position, or nil when not pressed.
func (p *Pointer) Position() *geom.Vec {
	if !p.held {
		return nil
	}
	v := p.pos
	return &v
}
