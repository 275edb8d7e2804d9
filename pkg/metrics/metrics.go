// Package metrics provides Prometheus metrics for the ecocycle service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	registry *prometheus.Registry

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business Metrics
	auditsRun          prometheus.Counter
	fleetDevicesScored prometheus.Counter
	strategyRuns       prometheus.Counter
	storagePlans       prometheus.Counter

	// External Data Metrics
	carbonAPIFallbacks *prometheus.CounterVec
}

// NewManager creates a metrics manager backed by its own registry, so
// default Go runtime collectors stay out of the scrape output.
func NewManager() *Manager {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	m := &Manager{registry: registry}

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecocycle",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ecocycle",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	m.auditsRun = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "ecocycle",
		Name:      "audits_total",
		Help:      "Total number of single-device audits computed",
	})

	m.fleetDevicesScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "ecocycle",
		Name:      "fleet_devices_scored_total",
		Help:      "Total number of fleet rows analyzed",
	})

	m.strategyRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "ecocycle",
		Name:      "strategy_simulations_total",
		Help:      "Total number of strategy comparison runs",
	})

	m.storagePlans = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "ecocycle",
		Name:      "storage_plans_total",
		Help:      "Total number of cloud storage retention plans built",
	})

	m.carbonAPIFallbacks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecocycle",
		Name:      "carbon_api_fallbacks_total",
		Help:      "External carbon API lookups that fell back to reference constants",
	}, []string{"lookup"})

	return m
}

// Handler exposes the registry for scraping.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Manager) RecordHTTPRequest(method, route string, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordAudit counts one single-device audit.
func (m *Manager) RecordAudit() { m.auditsRun.Inc() }

// RecordFleetDevices counts rows analyzed in a fleet run.
func (m *Manager) RecordFleetDevices(n int) { m.fleetDevicesScored.Add(float64(n)) }

// RecordStrategyRun counts one strategy comparison.
func (m *Manager) RecordStrategyRun() { m.strategyRuns.Inc() }

// RecordStoragePlan counts one retention plan.
func (m *Manager) RecordStoragePlan() { m.storagePlans.Inc() }

// RecordCarbonAPIFallback counts an external lookup that used the
// built-in constants instead of live data.
func (m *Manager) RecordCarbonAPIFallback(lookup string) {
	m.carbonAPIFallbacks.WithLabelValues(lookup).Inc()
}
