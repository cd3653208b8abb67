// Package debug controls the verbosity of the loggers used by the command line
// tools.
package debug

import (
	"io"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var enabled atomic.Bool

// Toggle turns on/off debug mode
func Toggle(on bool) {
	enabled.Store(on)
}

// Enabled reports whether debug mode is on.
func Enabled() bool {
	return enabled.Load()
}

// Do executes a function if debug is enabled, usually for side effects.
func Do(f func()) {
	if enabled.Load() {
		f()
	}
}

// NewLogger returns a logfmt logger writing to w. Records below the info level
// are dropped unless debug mode was turned on before the call.
func NewLogger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if Enabled() {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}
