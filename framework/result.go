package framework

import (
	"fmt"
	"io"
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Passed returns the number of tests that ran to completion without a failure.
func (r Results) Passed() int {
	return len(r.Tests) - len(r.Failures) - r.Skipped()
}

// Skipped returns the number of tests that were skipped, by a filter or by the test itself.
func (r Results) Skipped() int {
	n := 0
	for _, t := range r.Tests {
		if t.Skipped {
			n++
		}
	}
	return n
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a summary of a test run: the counts, then every failed test with
// its errors.
func PrintResults(out io.Writer, results Results) {
	fmt.Fprintf(out, "Passed: %d, failed: %d, skipped: %d\n",
		results.Passed(), len(results.Failures), results.Skipped())
	if results.OK() {
		fmt.Fprintln(out, "All tests passed")
		return
	}
	fmt.Fprintln(out, "Failed tests:")
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
	}
}
