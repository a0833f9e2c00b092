// Package metrics exposes prometheus instruments for document edits and sessions.
package metrics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Mug212/ats-score-resume-builder/internal/collection"
	"github.com/Mug212/ats-score-resume-builder/internal/document"
	"github.com/Mug212/ats-score-resume-builder/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resume_builder"

// Edit outcomes recorded on the edits counter.
const (
	OutcomeApplied   = "applied"
	OutcomeUnchanged = "unchanged"
	OutcomeNotFound  = "not_found"
	OutcomeRejected  = "rejected"
)

// Collector owns a private prometheus registry and implements document.Observer.
type Collector struct {
	registry *prometheus.Registry

	edits      *prometheus.CounterVec
	scores     prometheus.Histogram
	sessions   prometheus.Gauge
	requests   *prometheus.CounterVec
	completion *prometheus.GaugeVec
}

// New creates a Collector with all instruments registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_total",
			Help:      "Document edits by action type and outcome.",
		}, []string{"action", "outcome"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ats_score",
			Help:      "ATS score observed after each applied edit.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Documents currently held in memory.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		completion: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "section_complete",
			Help:      "1 when the section of the most recently edited document is complete.",
		}, []string{"section"}),
	}

	c.registry.MustRegister(c.edits, c.scores, c.sessions, c.requests, c.completion)
	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Applied implements document.Observer.
func (c *Collector) Applied(action document.Action, before, after document.Snapshot) {
	outcome := OutcomeApplied
	if after.Revision == before.Revision {
		outcome = OutcomeUnchanged
	}
	c.edits.WithLabelValues(string(action.Type()), outcome).Inc()
	c.scores.Observe(float64(after.Score))

	for _, key := range types.AllSections() {
		value := 0.0
		if after.Completion[key] {
			value = 1
		}
		c.completion.WithLabelValues(string(key)).Set(value)
	}
}

// Rejected implements document.Observer.
func (c *Collector) Rejected(action document.Action, err error) {
	outcome := OutcomeRejected
	if errors.Is(err, collection.ErrNotFound) {
		outcome = OutcomeNotFound
	}

	name := "unknown"
	if action != nil {
		name = string(action.Type())
	}
	c.edits.WithLabelValues(name, outcome).Inc()
}

// SessionOpened increments the active sessions gauge.
func (c *Collector) SessionOpened() { c.sessions.Inc() }

// SessionClosed decrements the active sessions gauge.
func (c *Collector) SessionClosed() { c.sessions.Dec() }

// ObserveRequest counts one HTTP request.
func (c *Collector) ObserveRequest(route string, code int) {
	c.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}
