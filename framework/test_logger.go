package framework

// TestLogger receives progress notifications as tests run. TestFinished is not called for a
// group of subtests that passed, since its subtests report the outcome.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                        {}
func (n nullTestLogger) TestError(TestID, error)                   {}
func (n nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                {}

type multiTestLogger []TestLogger

// MultiTestLogger returns a TestLogger that forwards every notification to each of the
// given loggers in order. Nil loggers are ignored.
func MultiTestLogger(loggers ...TestLogger) TestLogger {
	var m multiTestLogger
	for _, l := range loggers {
		if l != nil {
			m = append(m, l)
		}
	}
	return m
}

func (m multiTestLogger) TestStarted(id TestID) {
	for _, l := range m {
		l.TestStarted(id)
	}
}

func (m multiTestLogger) TestError(id TestID, err error) {
	for _, l := range m {
		l.TestError(id, err)
	}
}

func (m multiTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	for _, l := range m {
		l.TestFinished(id, failed, debugOutput)
	}
}

func (m multiTestLogger) TestSkipped(id TestID, reason string) {
	for _, l := range m {
		l.TestSkipped(id, reason)
	}
}
