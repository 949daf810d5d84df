package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_sync_runs_total",
			Help: "Successful rate sync job invocations per cadence",
		},
		[]string{"cadence"},
	)

	SyncSkips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_sync_skips_total",
			Help: "Rate sync invocations skipped because a manual override was active",
		},
		[]string{"cadence"},
	)

	SyncFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_sync_failures_total",
			Help: "Failed rate sync job invocations per cadence",
		},
		[]string{"cadence"},
	)

	ProviderFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_provider_fallbacks_total",
			Help: "Times the primary rate endpoint failed and the fallback host was queried",
		},
	)
)
