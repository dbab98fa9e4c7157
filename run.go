package canvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/draw"
)

// ebitenSurface presents a FrameBuffer by uploading it to the Ebitengine
// screen image. screen is only set for the duration of a Draw call.
type ebitenSurface struct {
	*FrameBuffer
	screen  *ebiten.Image
	scratch *image.RGBA
}

// Present uploads the buffer with WritePixels. PlanarRGBA bytes are already
// in the layout Ebitengine expects; PackedRGB words are converted first.
func (s *ebitenSurface) Present() error {
	if s.screen == nil {
		return fmt.Errorf("%w: no screen bound", ErrPresent)
	}
	b := s.screen.Bounds()
	if b.Dx() != s.w || b.Dy() != s.h {
		return fmt.Errorf("%w: screen is %dx%d, buffer is %dx%d", ErrPresent, b.Dx(), b.Dy(), s.w, s.h)
	}
	if s.format == PlanarRGBA {
		s.screen.WritePixels(s.pix)
		return nil
	}
	if s.scratch == nil || s.scratch.Rect != s.Bounds() {
		s.scratch = image.NewRGBA(s.Bounds())
	}
	draw.Draw(s.scratch, s.scratch.Rect, s.FrameBuffer, image.Point{}, draw.Src)
	s.screen.WritePixels(s.scratch.Pix)
	return nil
}

// game adapts a Loop to ebiten.Game. Ebitengine calls Update, Layout and Draw
// from a single goroutine, which keeps the frame cycle strictly sequential.
type game struct {
	loop      *Loop
	surface   *ebitenSurface
	resizable bool
	fps       *fpsOverlay
	keys      []ebiten.Key
	err       error
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if ebiten.IsWindowBeingClosed() {
		_ = g.loop.HandleEvent(Event{Type: EventQuit})
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		_ = g.loop.HandleEvent(Event{Type: EventKey, Key: k})
	}
	if g.loop.Stopped() {
		return ebiten.Termination
	}
	if g.fps != nil {
		tps := ebiten.TPS()
		if tps <= 0 {
			tps = ebiten.DefaultTPS
		}
		g.fps.update(1 / float64(tps))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.err != nil || g.loop.Stopped() {
		return
	}
	g.surface.screen = screen
	err := g.loop.HandleEvent(Event{Type: EventRedraw})
	g.surface.screen = nil
	if err != nil {
		g.err = err
		return
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout keeps the screen the same size as the backing buffer. When the
// window is resizable, a new outside size is forwarded to the loop first so
// the next frame's sink never sees stale dimensions.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.resizable && g.err == nil && !g.loop.Stopped() && outsideWidth > 0 && outsideHeight > 0 {
		if err := g.loop.HandleEvent(Event{Type: EventResize, Width: outsideWidth, Height: outsideHeight}); err != nil {
			g.err = err
		}
	}
	return g.surface.Size()
}

// Run opens a window and presents frames from renderer until the window is
// closed, the quit key is pressed, or presentation fails. Errors found
// before the first frame wrap ErrSurfaceInit.
func Run(renderer FrameRenderer, cfg RunConfig) error {
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceInit, err)
	}
	surface := &ebitenSurface{FrameBuffer: NewFrameBuffer(cfg.Width, cfg.Height, cfg.Format)}
	loop, err := NewLoop(surface, renderer, cfg.LoopConfig())
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	if cfg.TPS != 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowClosingHandled(true)

	g := &game{loop: loop, surface: surface, resizable: cfg.Resizable}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}

	err = ebiten.RunGame(g)
	switch {
	case err == nil:
		return nil
	case g.err != nil && errors.Is(err, g.err):
		return err
	case loop.Frames() == 0:
		return fmt.Errorf("%w: %w", ErrSurfaceInit, err)
	default:
		return err
	}
}
