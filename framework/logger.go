package framework

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const debugTimeFormat = "15:04:05.000"

// Logger is satisfied by the standard library's *log.Logger, by *logrus.Logger, and by the
// request logger of a poetrydb.Client.
type Logger interface {
	Printf(message string, args ...interface{})
}

type multiLogger []Logger

// MultiLogger returns a Logger that writes every message to each of the given loggers.
// Nil loggers are ignored.
func MultiLogger(loggers ...Logger) Logger {
	var m multiLogger
	for _, l := range loggers {
		if l != nil {
			m = append(m, l)
		}
	}
	return m
}

func (m multiLogger) Printf(message string, args ...interface{}) {
	for _, l := range m {
		l.Printf(message, args...)
	}
}

// CapturedMessage is one line of a test's debug output.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

func (m CapturedMessage) String() string {
	return fmt.Sprintf("DEBUG [%s] %s", m.Time.Format(debugTimeFormat), m.Message)
}

// CapturedOutput is the debug output of a test, oldest first.
type CapturedOutput []CapturedMessage

// Dump writes each message on its own line, after indent.
func (output CapturedOutput) Dump(dest io.Writer, indent string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s%s\n", indent, m)
	}
}

// CapturingLogger holds a test's debug output until the test finishes. Its zero value is
// ready to use.
type CapturingLogger struct {
	mu       sync.Mutex
	messages CapturedOutput
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	m := CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, m)
}

// Output returns a copy of everything logged so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append(CapturedOutput(nil), l.messages...)
}
