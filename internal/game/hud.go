package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/mesh-gradient/internal/palette"
)

const (
	swatchWidth  = 96
	swatchHeight = 8
	swatchSteps  = 24
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	tr := g.sim.Transition()
	combo, _ := palette.At(tr.Current())
	st := g.sim.Stats()

	status := fmt.Sprintf("%d %s", tr.Current()+1, combo.Name)
	if tr.Transitioning() {
		status += fmt.Sprintf(" (%3.0f%%)", tr.Progress()*100)
	}
	if p, ok := tr.Pending(); ok {
		status += fmt.Sprintf(" -> %d", p+1)
	}
	lines := []string{
		status,
		fmt.Sprintf("triangles %d  mesh %s", st.Triangles, st.MeanElapsed.Round(time.Microsecond)),
		fmt.Sprintf("TPS %0.1f  FPS %0.1f  up %s", ebiten.ActualTPS(), ebiten.ActualFPS(), formatDuration(time.Since(g.started))),
	}
	if g.lastErr != nil {
		lines = append(lines, "Error: "+g.lastErr.Error())
	} else if g.lastSaved != "" {
		lines = append(lines, "Saved "+g.lastSaved)
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 12, 12+i*16)
	}

	// Target combo blended in Lab, for a preview of where the colours are going.
	y := float32(12 + len(lines)*16 + 4)
	step := float32(swatchWidth) / swatchSteps
	for i := 0; i < swatchSteps; i++ {
		c := combo.Perceptual(float64(i) / (swatchSteps - 1))
		vector.DrawFilledRect(screen, 12+float32(i)*step, y, step+1, swatchHeight, c.NRGBA(), false)
	}
	vector.StrokeRect(screen, 12, y, swatchWidth, swatchHeight, 1, color.RGBA{R: 20, G: 20, B: 20, A: 160}, false)
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
