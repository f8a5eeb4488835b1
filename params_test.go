package main

import (
	"regexp"
	"testing"

	"github.com/poetrydb/contract-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParams(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"contract-tests",
		"-url", "http://localhost:3000/", "-config", "fixtures.yaml",
		"-run", "^title", "-skip", "random", "-debug", "-metrics-file", "out.prom"}))

	assert.Equal(t, "http://localhost:3000/", p.serviceURL)
	assert.Equal(t, "fixtures.yaml", p.configPath)
	assert.True(t, p.filters.MustMatch.AnyMatch("title/exact match"))
	assert.True(t, p.filters.MustNotMatch.AnyMatch("random/title only"))
	assert.True(t, p.debug)
	assert.False(t, p.debugAll)
	assert.Equal(t, "out.prom", p.metricsFile)
	assert.Empty(t, p.metricsPush)
}

func TestReadParamsRejectsBadInput(t *testing.T) {
	var p commandParams
	assert.False(t, p.Read([]string{"contract-tests", "-run", "("}))
	assert.False(t, p.Read([]string{"contract-tests", "stray"}))
}

func TestRerunCommandQuotesArguments(t *testing.T) {
	p := commandParams{serviceURL: "http://localhost:3000/", debugAll: true}
	failures := []framework.TestResult{
		{TestID: framework.TestID{Path: []string{"title", "exact match"}}},
	}
	assert.Equal(t,
		`contract-tests -url http://localhost:3000/ -debug-all -run '^title(/exact match)?$'`,
		p.rerunCommand("contract-tests", failures))
}

func TestRerunPatternSelectsOnlyTheFailedTest(t *testing.T) {
	rx := regexp.MustCompile(framework.SelectPattern(framework.TestID{Path: []string{"title", "exact match"}}))
	assert.True(t, rx.MatchString("title"))
	assert.True(t, rx.MatchString("title/exact match"))
	assert.False(t, rx.MatchString("title/unknown title"))
}
