package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the state of one test or subtest. Like *testing.T, it can record failures,
// stop the current test, skip it, and run nested subtests. It satisfies the TestingT
// interfaces of testify's assert and require packages.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	hasSubtests bool
}

// Run runs the root action of a test suite and returns the results of every subtest it
// started with Context.Run. The root itself is not counted as a test.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action, false)
	return env.results
}

func (c *Context) run(action func(*Context), record bool) {
	if record {
		defer c.record()
	}
	defer func() {
		if r := recover(); r != nil {
			c.settle(r)
		}
	}()
	action(c)
}

// settle turns a recovered panic into the test's outcome. A panic with the Context itself
// comes from FailNow or Skip; anything else is a bug in the test.
func (c *Context) settle(r interface{}) {
	if c.skipped {
		return
	}
	c.failed = true
	if _, ok := r.(*Context); ok && len(c.errors) > 0 {
		return
	}
	err := errors.New("test failed with no failure message")
	if _, ok := r.(*Context); !ok {
		err = fmt.Errorf("unexpected panic in test: %+v\n%s", r, debug.Stack())
	}
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// record is deferred first so that it sees the outcome settled by the recover handler.
func (c *Context) record() {
	if !c.countsAsTest() {
		return
	}
	result := TestResult{TestID: c.id, Errors: c.errors, Skipped: c.skipped}
	c.env.results.Tests = append(c.env.results.Tests, result)
	if c.failed && !c.skipped {
		c.env.results.Failures = append(c.env.results.Failures, result)
	}
}

// ID returns the full path of the current test.
func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest with its own Context. A subtest excluded by the filter is reported as
// skipped and its action is never called.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		c.env.results.Tests = append(c.env.results.Tests, TestResult{TestID: id, Skipped: true})
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c.hasSubtests = true
	c1.run(action, true)
	switch {
	case c1.skipped:
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	case c1.countsAsTest():
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// countsAsTest is false for a group whose subtests carry its outcome. A group that failed
// on its own, or was skipped, is still reported.
func (c *Context) countsAsTest() bool {
	return !c.hasSubtests || c.failed || c.skipped
}

// Errorf records a failure without stopping the test.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow stops the current test. Any failure must already have been recorded.
func (c *Context) FailNow() {
	c.failed = true
	panic(c)
}

// Helper exists for testify, which calls it when available.
func (c *Context) Helper() {}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
