package logging

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// slowThreshold is how long a tracked operation may take before it is logged as slow.
const slowThreshold = 500 * time.Millisecond

// New returns a console logger writing to out. Debug enables debug-level messages.
func New(out io.Writer, debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Track logs how long an operation took when the returned function is called.
func Track(logger logrus.FieldLogger, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := logger.WithField("duration", dur.Round(time.Millisecond).String())
		if dur > slowThreshold {
			entry.Warnf("%s completed (SLOW)", msg)
		} else {
			entry.Infof("%s completed", msg)
		}
	}
}

// Debugf adapts a logger's debug level to the Printf interface expected by the client, so
// that per-request lines only appear with debug logging enabled.
type Debugf struct {
	Logger logrus.FieldLogger
}

func (d Debugf) Printf(message string, args ...interface{}) {
	d.Logger.Debugf(message, args...)
}
