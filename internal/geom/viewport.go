package geom

// Viewport is the drawable area in simulation units, already multiplied by
// the device scale ratio.
type Viewport struct {
	Width, Height float64
}

// Buffered returns the min and max corners of the viewport grown by buffer on
// every side.
func (vp Viewport) Buffered(buffer float64) (lo, hi Vec) {
	return Vec{-buffer, -buffer}, Vec{vp.Width + buffer, vp.Height + buffer}
}
