// Package metrics exposes the Prometheus collectors of the service.
// Collectors are registered on the default registry at init.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetledger_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assetledger_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	followups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetledger_followups_total",
		Help: "Employee-side comment writes by outcome",
	}, []string{"outcome"})

	cascadeSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetledger_cascade_steps_total",
		Help: "Cascade steps executed by kind and outcome",
	}, []string{"kind", "outcome"})

	cascadeRuns = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assetledger_cascade_run_duration_seconds",
		Help:    "Duration of cascade runs",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind", "result"})

	versionConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetledger_version_conflicts_total",
		Help: "Optimistic version conflicts seen by read-modify-write operations",
	}, []string{"operation"})

	stockMovements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetledger_stock_movements_units_total",
		Help: "Consumable units moved, by action",
	}, []string{"action"})
)

// ObserveHTTPRequest records an HTTP request metric.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveFollowup counts an employee-side write by outcome
// (written, queued, dropped, replayed, requeued).
func ObserveFollowup(outcome string) {
	followups.WithLabelValues(outcome).Inc()
}

func ObserveCascadeStep(kind, outcome string) {
	cascadeSteps.WithLabelValues(kind, outcome).Inc()
}

// ObserveCascadeRun records how long a run took and how it ended
// (completed, partial, aborted).
func ObserveCascadeRun(kind, result string, duration time.Duration) {
	cascadeRuns.WithLabelValues(kind, result).Observe(duration.Seconds())
}

func ObserveConflict(operation string) {
	versionConflicts.WithLabelValues(operation).Inc()
}

// ObserveStockMovement adds units issued, returned or restocked.
func ObserveStockMovement(action string, units int) {
	if units <= 0 {
		return
	}
	stockMovements.WithLabelValues(action).Add(float64(units))
}
