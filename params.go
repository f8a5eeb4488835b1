package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/poetrydb/contract-tests/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	serviceURL  string
	configPath  string
	filters     framework.RegexFilters
	debug       bool
	debugAll    bool
	metricsPush string
	metricsFile string
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.serviceURL, "url", "", "PoetryDB base URL (overrides base_url from the config file)")
	fs.StringVar(&c.configPath, "config", "", "YAML config file (default $POETRYDB_CONFIG)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.StringVar(&c.metricsPush, "metrics-push", "", "Pushgateway URL to push run metrics to")
	fs.StringVar(&c.metricsFile, "metrics-file", "", "file to write run metrics to, in text format")

	// The flag set has already reported any parse error along with the usage text.
	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	return true
}

// rerunCommand builds a command line that runs only the given failed tests again, keeping
// the options that select the service and the logging.
func (c *commandParams) rerunCommand(program string, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program)
	if c.serviceURL != "" {
		b.add("-url", c.serviceURL)
	}
	if c.configPath != "" {
		b.add("-config", c.configPath)
	}
	if c.debugAll {
		b.add("-debug-all")
	} else {
		b.add("-debug")
	}
	for _, f := range failures {
		b.add("-run", framework.SelectPattern(f.TestID))
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
