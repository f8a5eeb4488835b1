package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/poetrydb/contract-tests/framework"
)

// Job is the Pushgateway job name used for a contract test run.
const Job = "poetrydb_contract_tests"

// Outcomes of a test as recorded by TestsTotal.
const (
	OutcomePassed  = "passed"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

// Metrics holds the collectors of one test run on a private registry.
type Metrics struct {
	Registry        *prometheus.Registry
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	TestsTotal      *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "poetrydb_requests_total",
			Help: "Requests sent to the PoetryDB service, by status code and method.",
		}, []string{"code", "method"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "poetrydb_request_duration_seconds",
			Help:    "Duration of requests to the PoetryDB service in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		TestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "poetrydb_contract_tests_total",
			Help: "Contract tests run, by outcome.",
		}, []string{"outcome"}),
	}
	m.Registry.MustRegister(m.RequestsTotal, m.RequestDuration, m.TestsTotal)
	return m
}

// InstrumentTransport wraps next, or http.DefaultTransport if next is nil, so that every
// request is counted and timed.
func (m *Metrics) InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(m.RequestsTotal,
		promhttp.InstrumentRoundTripperDuration(m.RequestDuration, next))
}

// TestLogger returns a framework.TestLogger that counts test outcomes.
func (m *Metrics) TestLogger() framework.TestLogger {
	return outcomeRecorder{m.TestsTotal}
}

type outcomeRecorder struct {
	total *prometheus.CounterVec
}

func (r outcomeRecorder) TestStarted(framework.TestID)     {}
func (r outcomeRecorder) TestError(framework.TestID, error) {}

func (r outcomeRecorder) TestFinished(id framework.TestID, failed bool, _ framework.CapturedOutput) {
	if failed {
		r.total.WithLabelValues(OutcomeFailed).Inc()
	} else {
		r.total.WithLabelValues(OutcomePassed).Inc()
	}
}

func (r outcomeRecorder) TestSkipped(framework.TestID, string) {
	r.total.WithLabelValues(OutcomeSkipped).Inc()
}

// Push sends the collected metrics to a Pushgateway.
func (m *Metrics) Push(gatewayURL string) error {
	if err := push.New(gatewayURL, Job).Gatherer(m.Registry).Push(); err != nil {
		return fmt.Errorf("push metrics to %s: %w", gatewayURL, err)
	}
	return nil
}

// WriteFile writes the collected metrics in the text exposition format, for the node
// exporter's textfile collector.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
