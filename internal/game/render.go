package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/mesh-gradient/internal/scene"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// maxBatchVertices keeps indices within uint16.
const maxBatchVertices = 1<<16 - 3

// imageRenderer draws scene collections onto an ebiten image. Polygons are
// batched into DrawTriangles calls; lines and circles go through vector.
type imageRenderer struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (r *imageRenderer) Render(c *scene.Collection) {
	for _, p := range c.Items() {
		switch p := p.(type) {
		case scene.Polygon:
			r.addPolygon(p)
		case scene.Line:
			r.flush()
			vector.StrokeLine(r.dst,
				float32(p.From.X), float32(p.From.Y),
				float32(p.To.X), float32(p.To.Y),
				1, p.Color.NRGBA(), true)
		case scene.Circle:
			r.flush()
			vector.DrawFilledCircle(r.dst,
				float32(p.Center.X), float32(p.Center.Y), float32(p.Radius),
				p.Fill.NRGBA(), true)
		}
	}
	r.flush()
}

func (r *imageRenderer) addPolygon(p scene.Polygon) {
	if len(r.vertices)+3 > maxBatchVertices {
		r.flush()
	}
	cr, cg, cb, ca := p.Fill.Floats()
	base := uint16(len(r.vertices))
	for _, pt := range p.Points {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   float32(pt.X),
			DstY:   float32(pt.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.indices = append(r.indices, base, base+1, base+2)
}

func (r *imageRenderer) flush() {
	if len(r.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	r.dst.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
