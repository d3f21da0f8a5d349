package kern

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger can
// race freely with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for kern. By default kern produces no
// log output. Pass nil to restore the silent default.
//
// The engine passes this logger down into extraction and generation, so
// one call covers the sub-packages too.
//
// Log levels used:
//   - [slog.LevelDebug]: per-glyph diagnostics (default frame fallback,
//     dispatcher path taken)
//   - [slog.LevelInfo]: batch lifecycle (generation started/finished)
//   - [slog.LevelWarn]: recovered problems (skipped malformed primitive,
//     character substituted by placeholder)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by kern.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
