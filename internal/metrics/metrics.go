// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus instrumentation for sync sessions and
// draft persistence. Collectors live on a dedicated registry so tests and
// multiple clients in one process never collide on the global one.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "intern_match"

// Attempt kinds.
const (
	KindForeground = "foreground"
	KindSilent     = "silent"
	KindRetry      = "retry"
)

// Attempt outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeDiscarded = "discarded"
)

// SyncRecorder receives sync and persistence events.
type SyncRecorder interface {
	AttemptStarted(session, kind string)
	AttemptFinished(session, outcome string, elapsed time.Duration)
	RetryCount(session string, n int)
	DraftWritten(ok bool)
}

// Registry is the Prometheus-backed [SyncRecorder].
type Registry struct {
	registry *prometheus.Registry

	attempts    *prometheus.CounterVec
	results     *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	retries     *prometheus.GaugeVec
	draftWrites *prometheus.CounterVec
}

// NewRegistry creates and registers every collector.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "attempts_total",
			Help:      "Fetch attempts started, by session and kind.",
		}, []string{"session", "kind"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "results_total",
			Help:      "Fetch attempts finished, by session and outcome.",
		}, []string{"session", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of fetch attempts.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"session"}),
		retries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "retry_count",
			Help:      "Current retry count of the session's failure chain.",
		}, []string{"session"}),
		draftWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "drafts",
			Name:      "writes_total",
			Help:      "Draft writes to local storage, by result.",
		}, []string{"result"}),
	}

	r.registry.MustRegister(r.attempts, r.results, r.duration, r.retries, r.draftWrites)
	return r
}

func (r *Registry) AttemptStarted(session, kind string) {
	r.attempts.WithLabelValues(session, kind).Inc()
}

func (r *Registry) AttemptFinished(session, outcome string, elapsed time.Duration) {
	r.results.WithLabelValues(session, outcome).Inc()
	if outcome != OutcomeDiscarded {
		r.duration.WithLabelValues(session).Observe(elapsed.Seconds())
	}
}

func (r *Registry) RetryCount(session string, n int) {
	r.retries.WithLabelValues(session).Set(float64(n))
}

func (r *Registry) DraftWritten(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	r.draftWrites.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

type nop struct{}

// Nop returns a [SyncRecorder] that drops every event.
func Nop() SyncRecorder { return nop{} }

func (nop) AttemptStarted(string, string)                 {}
func (nop) AttemptFinished(string, string, time.Duration) {}
func (nop) RetryCount(string, int)                        {}
func (nop) DraftWritten(bool)                             {}
