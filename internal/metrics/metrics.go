// Package metrics defines and registers all custom Prometheus metrics for
// the support client. It is the single source of truth for metric names,
// labels, and help strings; instrumentation sites import it rather than
// declaring collectors of their own.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "support_client"

// ── API client metrics ────────────────────────────────────────────────────────

// RequestsTotal counts requests that received an HTTP response.
// Labels:
//   - operation: the client operation name (e.g. "login", "list_events")
//   - status: the response status class ("2xx", "4xx", "5xx", ...)
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total API requests that produced an HTTP response, by operation and status class.",
	},
	[]string{"operation", "status"},
)

// TransportFailuresTotal counts requests that never produced a response.
// Label:
//   - operation: the client operation name
var TransportFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transport_failures_total",
		Help:      "Total API requests that failed before any response was received.",
	},
	[]string{"operation"},
)

// RequestDuration measures the wall time of one API request.
// Label:
//   - operation: the client operation name
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of API requests from send to response headers.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionTransitionsTotal counts session state changes.
// Label:
//   - to: the state entered ("authenticated" or "unauthenticated")
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total session state transitions, by target state.",
	},
	[]string{"to"},
)
