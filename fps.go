package canvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay prints the current FPS and TPS in the top-left corner of the
// screen. The text is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	sinceDraw  float64
	needsPaint bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), needsPaint: true}
}

// update advances the refresh timer by dt seconds.
func (o *fpsOverlay) update(dt float64) {
	o.sinceDraw += dt
	if o.sinceDraw < 0.5 {
		return
	}
	o.sinceDraw = 0
	o.needsPaint = true
}

// draw composites the overlay onto screen after the frame was uploaded.
func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.needsPaint {
		o.needsPaint = false
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(o.img, nil)
}
