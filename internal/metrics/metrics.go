// Package metrics holds the process-wide Prometheus collectors, exposed
// on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mutations counts engine operations by entity, operation and outcome
	// (confirmed or rolled_back).
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hisab",
		Name:      "mutations_total",
		Help:      "Optimistic mutations by entity, operation and outcome.",
	}, []string{"entity", "op", "outcome"})

	// GatewayRequestDuration observes sheet-gateway round trips.
	GatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hisab",
		Name:      "gateway_request_duration_seconds",
		Help:      "Duration of remote gateway calls by method, path and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// StatsRefreshFailures counts statistics refreshes that failed after a
	// confirmed mutation. These never fail the mutation itself.
	StatsRefreshFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hisab",
		Name:      "stats_refresh_failures_total",
		Help:      "Statistics refresh attempts that failed.",
	})
)

const (
	OutcomeConfirmed  = "confirmed"
	OutcomeRolledBack = "rolled_back"
)
