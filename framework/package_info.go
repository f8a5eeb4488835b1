// Package framework contains the test runner infrastructure that does not know anything
// about PoetryDB.
//
// The central type is Context, a test context similar to Go's *testing.T that works outside
// of the Go test runner. It associates pieces of test logic with a hierarchical TestID,
// accumulates failures into Results, and captures debug output per test so that it can be
// shown only for tests that failed.
//
// The domain-specific code that knows what is being tested builds its own test API on top
// of Context, and reports progress through a TestLogger.
package framework
