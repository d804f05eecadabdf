package tilebatch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by tilebatch and its sub-packages. By
// default, nothing is logged. Passing nil restores the default.
//
// Levels in use:
//
//	slog.LevelDebug: per-frame details (upload sizes, asset loads)
//	slog.LevelInfo:  GPU resource lifecycle, driver versions
//
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
//
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
