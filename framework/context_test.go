package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	kind string
	id   string
}

type recordingTestLogger struct {
	events     []recordedEvent
	lastOutput CapturedOutput
}

func (r *recordingTestLogger) TestStarted(id TestID) {
	r.events = append(r.events, recordedEvent{"started", id.String()})
}

func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.events = append(r.events, recordedEvent{"error", id.String()})
}

func (r *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	kind := "passed"
	if failed {
		kind = "failed"
	}
	r.events = append(r.events, recordedEvent{kind, id.String()})
	r.lastOutput = debugOutput
}

func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, recordedEvent{"skipped", id.String()})
}

func TestPassingAndFailingSubtests(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			assert.Equal(c, 1, 1)
		})
		c.Run("b", func(c *Context) {
			assert.Equal(c, 1, 2)
			c.Debug("still running")
		})
		c.Run("c", func(c *Context) {
			require.True(c, false)
			c.Debug("never reached")
		})
	})

	assert.False(t, results.OK())
	assert.Len(t, results.Tests, 3)
	require.Len(t, results.Failures, 2)
	assert.Equal(t, "b", results.Failures[0].TestID.String())
	assert.Equal(t, "c", results.Failures[1].TestID.String())
	assert.Equal(t, 1, results.Passed())
	assert.Empty(t, logger.lastOutput)

	assert.Equal(t, []recordedEvent{
		{"started", "a"}, {"passed", "a"},
		{"started", "b"}, {"error", "b"}, {"failed", "b"},
		{"started", "c"}, {"error", "c"}, {"failed", "c"},
	}, logger.events)
}

func TestNestedSubtestIDs(t *testing.T) {
	var seen []string
	results := Run(nil, nil, func(c *Context) {
		c.Run("title", func(c *Context) {
			c.Run("exact", func(c *Context) { seen = append(seen, c.ID().String()) })
			c.Run("text", func(c *Context) { seen = append(seen, c.ID().String()) })
		})
	})
	assert.True(t, results.OK())
	assert.Equal(t, []string{"title/exact", "title/text"}, seen)
	assert.Len(t, results.Tests, 2)
}

func TestSkip(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not supported")
			c.Errorf("never reached")
		})
	})
	assert.True(t, results.OK())
	assert.Equal(t, 1, results.Skipped())
	assert.Equal(t, []recordedEvent{{"started", "skipped"}, {"skipped", "skipped"}}, logger.events)
}

func TestFilterSkipsTestWithoutRunningIt(t *testing.T) {
	ran := false
	filter := func(id TestID) bool { return id.String() != "excluded" }
	results := Run(filter, nil, func(c *Context) {
		c.Run("excluded", func(c *Context) { ran = true })
		c.Run("included", func(c *Context) {})
	})
	assert.False(t, ran)
	assert.Equal(t, 1, results.Skipped())
	assert.Equal(t, 1, results.Passed())
}

func TestUnexpectedPanicIsAFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic(errors.New("boom"))
		})
	})
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "boom")
}

func TestFailNowWithoutMessage(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("silent", func(c *Context) { c.FailNow() })
	})
	require.Len(t, results.Failures, 1)
	assert.EqualError(t, results.Failures[0].Errors[0], "test failed with no failure message")
}

func TestGroupsAreNotCountedAsTests(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("title", func(c *Context) {
			c.Run("exact match", func(c *Context) { c.Errorf("wrong title") })
		})
	})

	assert.Len(t, results.Tests, 1)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "title/exact match", results.Failures[0].TestID.String())
	assert.Equal(t, 0, results.Passed())
	assert.Equal(t, []recordedEvent{
		{"started", "title"},
		{"started", "title/exact match"}, {"error", "title/exact match"}, {"failed", "title/exact match"},
	}, logger.events)
}

func TestGroupFailingOnItsOwnIsReported(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("random", func(c *Context) {
			c.Run("title only", func(c *Context) {})
			c.Errorf("setup failed")
		})
	})

	assert.Len(t, results.Tests, 2)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "random", results.Failures[0].TestID.String())
	assert.Equal(t, 1, results.Passed())
}

func TestDebugOutputIsCapturedPerTest(t *testing.T) {
	logger := &recordingTestLogger{}
	Run(nil, logger, func(c *Context) {
		c.Run("noisy", func(c *Context) {
			c.Debug("request %d", 1)
			c.DebugLogger().Printf("request %d", 2)
		})
	})
	require.Len(t, logger.lastOutput, 2)
	assert.Equal(t, "request 1", logger.lastOutput[0].Message)
	assert.Equal(t, "request 2", logger.lastOutput[1].Message)
}
