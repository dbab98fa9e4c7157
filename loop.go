package canvas

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoopConfig holds the per-loop choices that stay fixed for its lifetime.
type LoopConfig struct {
	// Format selects the pixel packing. The writer is resolved once in NewLoop.
	Format Format
	// Policy decides what happens to out-of-range writes.
	Policy BoundsPolicy
	// QuitKey stops the loop when pressed. Nil means ebiten.KeyEscape.
	QuitKey *ebiten.Key
	// DisableQuitKey ignores key events entirely.
	DisableQuitKey bool
	// Debug logs per-frame timing at debug level.
	Debug bool
}

// Loop drives the frame cycle: it builds a PixelSink over the surface's
// buffer, runs the FrameRenderer, then presents. Exactly one frame runs at a
// time; Loop is not safe for concurrent use.
type Loop struct {
	surface  Surface
	renderer FrameRenderer
	format   Format
	policy   BoundsPolicy
	write    pixelWriter
	quitKey  ebiten.Key
	useQuit  bool
	debug    bool

	width, height int
	frames        uint64
	stopped       bool
}

// NewLoop creates a loop over surface. It fails with ErrSurfaceInit when the
// surface is missing or reports an unusable size.
func NewLoop(surface Surface, renderer FrameRenderer, cfg LoopConfig) (*Loop, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrSurfaceInit)
	}
	if renderer == nil {
		return nil, errors.New("canvas: nil frame renderer")
	}
	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %w: %dx%d", ErrSurfaceInit, ErrInvalidSize, w, h)
	}
	quitKey := ebiten.KeyEscape
	if cfg.QuitKey != nil {
		quitKey = *cfg.QuitKey
	}
	l := &Loop{
		surface:  surface,
		renderer: renderer,
		format:   cfg.Format,
		policy:   cfg.Policy,
		write:    cfg.Format.writer(),
		quitKey:  quitKey,
		useQuit:  !cfg.DisableQuitKey,
		debug:    cfg.Debug,
		width:    w,
		height:   h,
	}
	Logger().Info("canvas: loop started",
		slog.Int("width", w),
		slog.Int("height", h),
		slog.String("format", cfg.Format.String()),
		slog.String("policy", cfg.Policy.String()))
	return l, nil
}

// Format returns the pixel format chosen at construction.
func (l *Loop) Format() Format { return l.format }

// Policy returns the bounds policy chosen at construction.
func (l *Loop) Policy() BoundsPolicy { return l.policy }

// QuitKey returns the key that stops the loop and whether key quitting is
// enabled.
func (l *Loop) QuitKey() (ebiten.Key, bool) { return l.quitKey, l.useQuit }

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() uint64 { return l.frames }

// Stopped reports whether a quit signal or fatal error ended the loop.
func (l *Loop) Stopped() bool { return l.stopped }

// Stop ends the loop. Later events are ignored.
func (l *Loop) Stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	Logger().Info("canvas: loop stopped", slog.Uint64("frames", l.frames))
}

// HandleEvent processes one event. A returned error is fatal and leaves the
// loop stopped. Events arriving after a stop are ignored, so no frame is
// presented once a quit signal has been seen.
func (l *Loop) HandleEvent(ev Event) error {
	if l.stopped {
		return nil
	}
	switch ev.Type {
	case EventQuit:
		l.Stop()
	case EventKey:
		if l.useQuit && ev.Key == l.quitKey {
			l.Stop()
		}
	case EventResize:
		if err := l.resize(ev.Width, ev.Height); err != nil {
			l.Stop()
			return err
		}
	case EventRedraw:
		if err := l.drawFrame(); err != nil {
			l.Stop()
			return err
		}
	}
	return nil
}

// Run pulls events from src until the loop stops, src returns io.EOF, or ctx
// is cancelled. Cancellation is only observed between events, never during a
// frame. A clean stop returns nil.
func (l *Loop) Run(ctx context.Context, src EventSource) error {
	for !l.stopped {
		if ctx.Err() != nil {
			l.Stop()
			return nil
		}
		ev, err := src.NextEvent(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				l.Stop()
				return nil
			}
			l.Stop()
			return fmt.Errorf("canvas: next event: %w", err)
		}
		if err := l.HandleEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// resize brings the surface to the new size before the next sink is built.
func (l *Loop) resize(w, h int) error {
	if w == l.width && h == l.height {
		return nil
	}
	if err := l.surface.Resize(w, h); err != nil {
		return fmt.Errorf("canvas: resize to %dx%d: %w", w, h, err)
	}
	l.width, l.height = l.surface.Size()
	Logger().Info("canvas: resized", slog.Int("width", l.width), slog.Int("height", l.height))
	return nil
}

// drawFrame renders one frame into the surface buffer and presents it.
func (l *Loop) drawFrame() error {
	w, h := l.surface.Size()
	if w <= 0 || h <= 0 || w > math.MaxInt32 || h > math.MaxInt32 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	l.width, l.height = w, h
	need := w * h * BytesPerPixel
	buf := l.surface.Buffer()
	if len(buf) < need {
		return fmt.Errorf("%w: %d bytes for %dx%d, need %d", ErrBufferSize, len(buf), w, h, need)
	}

	var stats frameStats
	t0 := time.Now()

	sink := newPixelSink(buf[:need:need], int32(w), int32(h), l.write, l.policy)
	l.renderer.RenderFrame(sink)
	sink.release()

	stats.renderTime = time.Since(t0)
	stats.writes = sink.Writes()
	stats.dropped = sink.Dropped()
	t0 = time.Now()

	if err := l.surface.Present(); err != nil {
		Logger().Error("canvas: present failed", slog.Uint64("frame", l.frames), slog.Any("err", err))
		if errors.Is(err, ErrPresent) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrPresent, err)
	}
	stats.presentTime = time.Since(t0)
	l.frames++
	l.logFrame(stats)
	return nil
}
