// Package metrics defines and registers all custom Prometheus metrics for the
// storefront gateway. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the external services.
// Labels:
//   - service: "product" or "identity"
//   - outcome: "success", "rejected" (non-2xx reply), or "error" (transport failure)
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the external services.",
	},
	[]string{"service", "outcome"},
)

// UpstreamRequestDuration measures end-to-end latency of upstream calls.
// Label:
//   - service: "product" or "identity"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the external services.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"service"},
)

// ── Page metrics ──────────────────────────────────────────────────────────────

// PageRendersTotal counts storefront page renders by the state shown.
// Label:
//   - state: "ready", "error", or "empty" (catalog returned no products)
var PageRendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_renders_total",
		Help:      "Total number of storefront page renders, by rendered state.",
	},
	[]string{"state"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthSubmissionsTotal counts auth form submissions.
// Labels:
//   - mode: "login" or "register"
//   - outcome: "success" or "failure"
var AuthSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_submissions_total",
		Help:      "Total number of auth form submissions, by mode and outcome.",
	},
	[]string{"mode", "outcome"},
)

// SessionsIssuedTotal counts fresh session cookies minted by the middleware.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of new visitor sessions issued.",
	},
)
