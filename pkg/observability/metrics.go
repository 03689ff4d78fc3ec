// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the geleit gateway.
package observability

import "github.com/prometheus/client_golang/prometheus"

// GatewayBuckets defines histogram buckets suited for proxy latencies,
// ranging from 5ms to 30s.
var GatewayBuckets = []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

var (
	// RequestsTotal counts all HTTP requests by method and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geleit_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration records HTTP request duration in seconds by method.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geleit_request_duration_seconds",
			Help:    "Request duration",
			Buckets: GatewayBuckets,
		},
		[]string{"method"},
	)

	// SpanIDsTotal counts derived correlation ids by source: "header" when
	// the client supplied one, "generated" when a fresh id was minted.
	SpanIDsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geleit_span_ids_total",
			Help: "Derived span ids",
		},
		[]string{"source"},
	)

	// IdentityGrantsTotal counts authorization records granted by the
	// identity layer, by subject.
	IdentityGrantsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geleit_identity_grants_total",
			Help: "Identity grants",
		},
		[]string{"subject"},
	)

	// UpstreamRequestsTotal counts requests forwarded to the upstream by
	// status class, with "error" for requests that never got a response.
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geleit_upstream_requests_total",
			Help: "Upstream requests",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		SpanIDsTotal,
		IdentityGrantsTotal,
		UpstreamRequestsTotal,
	)
}
