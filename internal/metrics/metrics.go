// Package metrics holds the prometheus collectors of the expense service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the domain collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	transitions     *prometheus.CounterVec
	exportedRows    *prometheus.CounterVec
	dashboardBuilds *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
}

// New creates collectors registered on a private registry together with the
// go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "expenses",
			Name:      "approval_transitions_total",
			Help:      "Expenses moved to an approval status.",
		}, []string{"status"}),
		exportedRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "expenses",
			Name:      "exported_rows_total",
			Help:      "Rows written by report exports.",
		}, []string{"format"}),
		dashboardBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "expenses",
			Name:      "dashboard_builds_total",
			Help:      "Dashboards aggregated per time frame.",
		}, []string{"time_frame"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "expenses",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status.",
		}, []string{"method", "status"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.transitions,
		m.exportedRows,
		m.dashboardBuilds,
		m.httpRequests,
	)
	return m
}

// Transition counts n expenses moved to status.
func (m *Metrics) Transition(status string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.transitions.WithLabelValues(status).Add(float64(n))
}

// Exported counts rows written in format.
func (m *Metrics) Exported(format string, rows int) {
	if m == nil {
		return
	}
	m.exportedRows.WithLabelValues(format).Add(float64(rows))
}

// DashboardBuilt counts one dashboard aggregation.
func (m *Metrics) DashboardBuilt(timeFrame string) {
	if m == nil {
		return
	}
	m.dashboardBuilds.WithLabelValues(timeFrame).Inc()
}

// Request counts one served HTTP request.
func (m *Metrics) Request(method, status string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, status).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
