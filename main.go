package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/poetrydb/contract-tests/config"
	"github.com/poetrydb/contract-tests/framework"
	"github.com/poetrydb/contract-tests/logging"
	"github.com/poetrydb/contract-tests/metrics"
	"github.com/poetrydb/contract-tests/poetrydb"
	"github.com/poetrydb/contract-tests/poetrytests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(2)
	}

	log := logging.New(os.Stderr, params.debug || params.debugAll)

	cfg, err := config.Load(params.configPath)
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	if params.serviceURL != "" {
		cfg.BaseURL = params.serviceURL
	}
	if _, err := poetrydb.NewClient(cfg.BaseURL); err != nil {
		log.WithError(err).Fatal("Invalid service URL")
	}

	m := metrics.New()
	env := poetrytests.Environment{
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Transport: m.InstrumentTransport(nil)},
		Logger:     logging.Debugf{Logger: log},
		Fixtures:   cfg.Fixtures,
	}

	log.WithField("url", cfg.BaseURL).Info("Running test suite")
	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	console := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	done := logging.Track(log, "Test suite")
	results := poetrytests.RunTestSuite(env, params.filters.AsFilter, framework.MultiTestLogger(console, m.TestLogger()))
	done()

	fmt.Println()
	framework.PrintResults(os.Stdout, results)

	if params.metricsPush != "" {
		if err := m.Push(params.metricsPush); err != nil {
			log.WithError(err).Error("Could not push metrics")
		}
	}
	if params.metricsFile != "" {
		if err := m.WriteFile(params.metricsFile); err != nil {
			log.WithError(err).Error("Could not write metrics")
		}
	}

	if !results.OK() {
		fmt.Println()
		fmt.Println("To run only the failed tests again:")
		fmt.Printf("  %s\n", params.rerunCommand(filepath.Base(os.Args[0]), results.Failures))
		os.Exit(1)
	}
}
