package canvas

import (
	"log/slog"
	"time"
)

// frameStats holds per-frame timing and write counts.
type frameStats struct {
	renderTime  time.Duration
	presentTime time.Duration
	writes      int
	dropped     int
}

// logFrame reports a finished frame. Out-of-range writes are always worth a
// warning; timing is only logged in debug mode.
func (l *Loop) logFrame(stats frameStats) {
	log := Logger()
	if stats.dropped > 0 {
		log.Warn("canvas: frame had out-of-range writes",
			slog.Uint64("frame", l.frames),
			slog.Int("dropped", stats.dropped),
			slog.Int("width", l.width),
			slog.Int("height", l.height))
	}
	if !l.debug {
		return
	}
	log.Debug("canvas: frame",
		slog.Uint64("frame", l.frames),
		slog.Duration("render", stats.renderTime),
		slog.Duration("present", stats.presentTime),
		slog.Duration("total", stats.renderTime+stats.presentTime),
		slog.Int("writes", stats.writes))
}
