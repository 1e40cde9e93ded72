// Package metrics holds the Prometheus instruments shared by the data
// layer and the services. All collectors are registered with the global
// registry in init, so importing the package is enough to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raceboard_operations_total",
			Help: "Service operations by name and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "raceboard_operation_duration_seconds",
			Help:    "Service operation latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raceboard_key_lookups_total",
			Help: "Public to internal key lookups by entity and outcome.",
		},
		[]string{"entity", "outcome"},
	)

	LegacyKeysTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raceboard_legacy_keys_total",
			Help: "Rows surfaced with their internal key because the public key is missing.",
		},
		[]string{"entity"},
	)

	UserBuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raceboard_user_builds_total",
			Help: "Authenticated user records built, by role. Failures are labelled \"invalid\".",
		},
		[]string{"role"},
	)
)

func init() {
	prometheus.MustRegister(
		OperationsTotal,
		OperationDuration,
		LookupsTotal,
		LegacyKeysTotal,
		UserBuildsTotal,
	)
}
