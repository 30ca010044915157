package rawcolor

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger, swapped atomically by SetLogger.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(defaultLogger())
}

// defaultLogger returns a development logger writing to stderr when debug is
// set, or a no-op logger otherwise.
func defaultLogger() *zap.Logger {
	if debug {
		if l, err := zap.NewDevelopment(); err == nil {
			return l
		}
	}
	return zap.NewNop()
}

// SetLogger configures the logger used by rawcolor and its sub packages.
//
// By default nothing is logged, unless RAWCOLOR_DEBUG is set in which case a
// development logger writing to stderr is installed. Pass nil to restore the
// default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = defaultLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}
