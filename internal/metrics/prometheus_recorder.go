package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry       *prom.Registry
	renderDuration *prom.HistogramVec
	renderOutcome  *prom.CounterVec
	lintIssues     *prom.CounterVec
	previewRebuild *prom.CounterVec
	previewHits    prom.Counter
}

// NewPrometheusRecorder constructs and registers Prometheus metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.renderDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "attrdoc",
		Name:      "render_duration_seconds",
		Help:      "Duration of catalog render passes",
		Buckets:   prom.DefBuckets,
	}, []string{"format"})
	pr.renderOutcome = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "attrdoc",
		Name:      "render_outcomes_total",
		Help:      "Render outcomes by format and result",
	}, []string{"format", "outcome"})
	pr.lintIssues = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "attrdoc",
		Name:      "lint_issues_total",
		Help:      "Lint issues found, by severity",
	}, []string{"severity"})
	pr.previewRebuild = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "attrdoc",
		Name:      "preview_rebuilds_total",
		Help:      "Preview rebuilds by result",
	}, []string{"result"})
	pr.previewHits = prom.NewCounter(prom.CounterOpts{
		Namespace: "attrdoc",
		Name:      "preview_requests_total",
		Help:      "Preview page requests served",
	})

	reg.MustRegister(pr.renderDuration, pr.renderOutcome, pr.lintIssues, pr.previewRebuild, pr.previewHits)
	return pr
}

// Registry returns the underlying Prometheus registry.
func (pr *PrometheusRecorder) Registry() *prom.Registry {
	return pr.registry
}

// Handler returns an http.Handler serving the recorder's metrics.
func (pr *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(pr.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (pr *PrometheusRecorder) ObserveRenderDuration(format string, d time.Duration) {
	pr.renderDuration.WithLabelValues(format).Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncRenderOutcome(format string, outcome OutcomeLabel) {
	pr.renderOutcome.WithLabelValues(format, string(outcome)).Inc()
}

func (pr *PrometheusRecorder) AddLintIssues(severity string, n int) {
	pr.lintIssues.WithLabelValues(severity).Add(float64(n))
}

func (pr *PrometheusRecorder) IncPreviewRebuild(success bool) {
	result := "success"
	if !success {
		result = "failed"
	}
	pr.previewRebuild.WithLabelValues(result).Inc()
}

func (pr *PrometheusRecorder) IncPreviewRequest() {
	pr.previewHits.Inc()
}
