package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusOK    = "ok"
	StatusError = "error"

	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultFailed   = "fetch_failed"
	ResultInvalid  = "invalid_request"
	ResultCached   = "cached"
)

var (
	// GraphQLRequestsTotal counts OneSource GraphQL requests per operation and outcome.
	GraphQLRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "onesource",
			Name:      "graphql_requests_total",
			Help:      "Number of GraphQL requests sent to OneSource.",
		},
		[]string{"operation", "status"},
	)

	// GraphQLRequestDuration tracks OneSource request latency.
	GraphQLRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "onesource",
			Name:      "graphql_request_duration_seconds",
			Help:      "Latency of GraphQL requests sent to OneSource.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// PageBuildsTotal counts page builds by result.
	PageBuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nft_viewer",
			Name:      "page_builds_total",
			Help:      "Number of page builds by result.",
		},
		[]string{"result"},
	)

	registerOnce sync.Once
)

// MustRegisterMetrics registers all collectors in the default registry. Safe to call twice.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(GraphQLRequestsTotal, GraphQLRequestDuration, PageBuildsTotal)
	})
}

// ObserveGraphQLRequest records one finished GraphQL request.
func ObserveGraphQLRequest(operation string, started time.Time, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	GraphQLRequestsTotal.WithLabelValues(operation, status).Inc()
	GraphQLRequestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// ObservePageBuild records the result of one page build.
func ObservePageBuild(result string) {
	PageBuildsTotal.WithLabelValues(result).Inc()
}
