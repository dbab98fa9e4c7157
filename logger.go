package canvas

import (
	"log/slog"
	"sync/atomic"
)

var (
	discardLogger = slog.New(slog.DiscardHandler)
	loopLogger    atomic.Pointer[slog.Logger]
)

// SetLogger routes loop diagnostics to l. Nothing is logged until it is
// called; nil restores that silence.
//
// The loop logs at these levels:
//   - [slog.LevelDebug]: render and present time per frame, with LoopConfig.Debug
//   - [slog.LevelInfo]: loop started, resized, stopped
//   - [slog.LevelWarn]: a frame dropped or rejected out-of-range writes
//   - [slog.LevelError]: the surface failed to present
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	loopLogger.Store(l)
}

// Logger returns the logger set by SetLogger. Safe for concurrent use.
func Logger() *slog.Logger {
	if l := loopLogger.Load(); l != nil {
		return l
	}
	return discardLogger
}
