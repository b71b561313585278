package gumble

import (
	"log/slog"
	"sync/atomic"
)

// defaultLoggerValue lets library code log through a *slog.Logger without
// ever calling slog.SetDefault itself; an embedder supplies its own via
// Config.Logger, and everything not yet wired to a Client falls back to
// slog.Default(). Stored as atomic.Value so tests can swap it without a
// data race.
var defaultLoggerValue atomic.Value

func defaultLogger() *slog.Logger {
	if v, ok := defaultLoggerValue.Load().(*slog.Logger); ok && v != nil {
		return v
	}
	return slog.Default()
}

// SetDefaultLogger overrides the package-wide fallback logger used before a
// Client's own Config.Logger is available (e.g. during dispatcher
// construction). Intended for embedders that want consistent logging from
// the moment the process starts, not mid-session reconfiguration.
func SetDefaultLogger(l *slog.Logger) {
	defaultLoggerValue.Store(l)
}
