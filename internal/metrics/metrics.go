// Package metrics registers the prometheus collectors of the server and
// exposes them over HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values of token issuance metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	tokenIssuanceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_token_issuance_total",
			Help: "Total number of upstream access token requests",
		},
		[]string{"kind", "outcome"},
	)

	tokenIssuanceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "access_token_issuance_duration_seconds",
			Help:    "Duration of upstream access token requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)

// ObserveHTTPRequest records one served request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// ObserveTokenIssuance records one access token exchange.
func ObserveTokenIssuance(kind string, err error, duration time.Duration) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	tokenIssuanceTotal.WithLabelValues(kind, outcome).Inc()
	tokenIssuanceDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// Handler serves the default registry in the prometheus text format.
// Compression is left to the router's gzip middleware.
func Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{DisableCompression: true}),
	)
}
