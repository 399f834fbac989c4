package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	APIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_requests_total",
			Help: "Outbound API requests by operation and outcome",
		},
		[]string{"op", "outcome"}, // outcome: ok|not_found|server_error|network_error
	)
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_client_request_duration_seconds",
			Help:    "Outbound API request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

var (
	StaleResultsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "view_stale_results_dropped_total",
			Help: "Request completions discarded because a newer request superseded them or the view was closed",
		},
	)
	ViewRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "view_retries_total",
			Help: "User-initiated retries of a failed view request",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация коллекторов; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(APIRequests, APIRequestDuration, StaleResultsDropped, ViewRetries)
	})
}
