// Package metrics exposes test-reporting progress as Prometheus metrics.
// The Reporter keeps its own registry so it never collides with metrics
// registered elsewhere in the host process.
package metrics

import (
	"net/http"

	"github.com/launchdarkly/testset-reporting/logging"
	"github.com/launchdarkly/testset-reporting/reporting"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Scope outcome labels used by the scopes counter.
const (
	OutcomePassed  = "passed"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

// Reporter is a reporting.Reporter that counts assertion results by kind,
// finished scopes by outcome, and tracks the number of currently active
// scopes.
type Reporter struct {
	registry     *prometheus.Registry
	results      *prometheus.CounterVec
	scopes       *prometheus.CounterVec
	activeScopes prometheus.Gauge
}

// NewReporter creates a Reporter with a fresh registry.
func NewReporter() *Reporter {
	r := &Reporter{
		registry: prometheus.NewRegistry(),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "testset_results_total",
			Help: "Assertion results recorded, by kind.",
		}, []string{"kind"}),
		scopes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "testset_scopes_total",
			Help: "Scopes finished or skipped, by outcome.",
		}, []string{"outcome"}),
		activeScopes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "testset_active_scopes",
			Help: "Number of currently active scopes.",
		}),
	}
	r.registry.MustRegister(r.results, r.scopes, r.activeScopes)
	return r
}

func (r *Reporter) ScopeStarted(reporting.ScopeID) {
	r.activeScopes.Inc()
}

func (r *Reporter) ScopeSkipped(reporting.ScopeID, string) {
	r.scopes.WithLabelValues(OutcomeSkipped).Inc()
}

func (r *Reporter) ResultRecorded(_ reporting.ScopeID, res reporting.Result) {
	r.results.WithLabelValues(res.Kind.String()).Inc()
}

func (r *Reporter) ScopeFinished(_ reporting.ScopeID, summary reporting.Summary, _ logging.CapturedOutput) {
	r.activeScopes.Dec()
	if summary.OK() {
		r.scopes.WithLabelValues(OutcomePassed).Inc()
	} else {
		r.scopes.WithLabelValues(OutcomeFailed).Inc()
	}
}

// Handler returns an HTTP handler that serves this reporter's registry in
// the Prometheus exposition format.
func (r *Reporter) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ResultCount returns the current counter value for a result kind
// ("pass", "fail", or "error").
func (r *Reporter) ResultCount(kind string) float64 {
	return testutil.ToFloat64(r.results.WithLabelValues(kind))
}

// ScopeCount returns the current counter value for a scope outcome (one
// of the Outcome* constants).
func (r *Reporter) ScopeCount(outcome string) float64 {
	return testutil.ToFloat64(r.scopes.WithLabelValues(outcome))
}

// ActiveScopes returns the current value of the active-scope gauge.
func (r *Reporter) ActiveScopes() float64 {
	return testutil.ToFloat64(r.activeScopes)
}
