package blake512

import (
	"os"

	"github.com/sirupsen/logrus"
)

// debugEnabled controls whether debug tracing is enabled via BLAKE512_DEBUG env var
var debugEnabled = os.Getenv("BLAKE512_DEBUG") == "1"

// traceLogger receives trace output. It is separate from the logrus
// standard logger so that importing programs keep their own log settings.
var traceLogger = newTraceLogger()

func newTraceLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// traceBlock logs a block dispatch to the compression function
func traceBlock(counter uint64, nullt bool) {
	if debugEnabled {
		traceLogger.WithFields(logrus.Fields{
			"counter": counter,
			"nullt":   nullt,
		}).Debug("compress block")
	}
}

// traceFinal logs the padding branch chosen at finalization
func traceFinal(nx int, length uint64, branch string) {
	if debugEnabled {
		traceLogger.WithFields(logrus.Fields{
			"buffered": nx,
			"bits":     length,
			"branch":   branch,
		}).Debug("finalize")
	}
}

// traceSalt logs an installed salt
func traceSalt(s [4]uint64) {
	if debugEnabled {
		traceLogger.Debugf("salt = %016x %016x %016x %016x", s[0], s[1], s[2], s[3])
	}
}
