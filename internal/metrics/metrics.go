// Package metrics defines Prometheus metrics for the AliExpress client.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "aliexpress"

// API call metrics.
var (
	APICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_calls_total",
		Help:      "Total AliExpress API calls by operation and result (ok or failure kind).",
	}, []string{"method", "result"})

	APICallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_call_duration_seconds",
		Help:      "Duration of AliExpress API round trips in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	APIPlatformErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_platform_errors_total",
		Help:      "Total error_response envelopes returned by the platform, by error code.",
	}, []string{"code"})
)
