// Package metrics defines observability hooks for generation and
// preview. The NoopRecorder keeps metrics strictly optional; the
// Prometheus implementation backs the preview server's /metrics
// endpoint.
package metrics

import "time"

// OutcomeLabel enumerates render outcome categories for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for render, lint, and preview
// activity. Implementations may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveRenderDuration(format string, d time.Duration)
	IncRenderOutcome(format string, outcome OutcomeLabel)
	AddLintIssues(severity string, n int)
	IncPreviewRebuild(success bool)
	IncPreviewRequest()
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(string, time.Duration) {}
func (NoopRecorder) IncRenderOutcome(string, OutcomeLabel)       {}
func (NoopRecorder) AddLintIssues(string, int)                   {}
func (NoopRecorder) IncPreviewRebuild(bool)                      {}
func (NoopRecorder) IncPreviewRequest()                          {}
