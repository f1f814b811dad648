package saturnlog

import (
	"io"

	"github.com/sirupsen/logrus"
)

// logger is the package-wide structured logger. It defaults to a
// fresh logrus logger at WarnLevel (quiet unless something is
// actually wrong); callers that want step-by-step tracing call
// SetTraceLogging(true) (or, from the CLI, pass --trace) to drop to
// DebugLevel.
var logger = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}()

// SetTraceLogging toggles verbose (Debug-level) structured logging for
// the stepper and driver.
func SetTraceLogging(enabled bool) {
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
}

// SetLogOutput redirects where log lines are written (e.g. to capture
// trace output, or to silence it entirely with io.Discard).
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLogger replaces the package logger wholesale, e.g. so a host
// application can route saturnlog's logs through its own logrus
// instance with shared hooks/formatters.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}
