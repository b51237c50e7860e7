// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Link attempt outcomes.
const (
	OutcomeStarted = "started"
	OutcomeLinked  = "linked"
	OutcomeFailed  = "failed"
)

// Metrics groups every collector. Create it once with New.
type Metrics struct {
	gatherer prometheus.Gatherer

	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	linkAttempts     *prometheus.CounterVec
	catalogFailures  *prometheus.CounterVec
	ratingsSubmitted prometheus.Counter
	notifyFailures   prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rotection_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds, by route, method and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		requestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rotection_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		}),
		linkAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rotection_link_attempts_total",
				Help: "Roblox account link attempts, by path and outcome.",
			},
			[]string{"path", "outcome"},
		),
		catalogFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rotection_catalog_fetch_failures_total",
				Help: "Failed Roblox catalog requests, by endpoint.",
			},
			[]string{"endpoint"},
		),
		ratingsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotection_ratings_submitted_total",
			Help: "Ratings stored, including overwrites.",
		}),
		notifyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotection_notifications_failed_total",
			Help: "Moderation notifications that could not be delivered.",
		}),
	}

	reg.MustRegister(
		m.requestDuration,
		m.requestsInFlight,
		m.linkAttempts,
		m.catalogFailures,
		m.ratingsSubmitted,
		m.notifyFailures,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RequestStarted increments the in-flight gauge.
func (m *Metrics) RequestStarted() { m.requestsInFlight.Inc() }

// RequestFinished records one served request and decrements the in-flight gauge.
func (m *Metrics) RequestFinished(route, method string, status int, d time.Duration) {
	m.requestsInFlight.Dec()
	m.requestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}

// LinkAttempt counts a linking step; path is "oauth" or "manual".
func (m *Metrics) LinkAttempt(path, outcome string) {
	m.linkAttempts.WithLabelValues(path, outcome).Inc()
}

// CatalogFetchFailed counts a failed catalog request.
func (m *Metrics) CatalogFetchFailed(endpoint string) {
	m.catalogFailures.WithLabelValues(endpoint).Inc()
}

// RatingSubmitted counts a stored rating.
func (m *Metrics) RatingSubmitted() { m.ratingsSubmitted.Inc() }

// NotificationFailed counts an undelivered notification.
func (m *Metrics) NotificationFailed() { m.notifyFailures.Inc() }
