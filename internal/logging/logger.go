// Package logging holds the process-wide structured logger used by the
// texfilter packages. By default nothing is logged.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs l for all packages. Pass nil to restore silence.
// Safe for concurrent use.
//
// Levels:
//   - [slog.LevelDebug]: per-texture and per-pass diagnostics
//   - [slog.LevelInfo]: batch lifecycle
//   - [slog.LevelWarn]: skipped inputs
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
