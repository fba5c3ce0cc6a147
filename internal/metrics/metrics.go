// Package metrics registers the Prometheus collectors this module exposes
// for quote-service call volume and latency.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QuoteMetrics tracks call counts, errors, and latency per quote operation
// (swap, add-liquidity, remove-liquidity).
type QuoteMetrics struct {
	Requests *prometheus.CounterVec
	Errors   *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewQuoteMetrics registers the collectors against reg. Pass
// prometheus.DefaultRegisterer from cmd/api to expose them on the default
// /metrics endpoint.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	m := &QuoteMetrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "elasticswap",
			Subsystem: "quote",
			Name:      "requests_total",
			Help:      "Total number of quote requests by operation.",
		}, []string{"operation"}),
		Errors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "elasticswap",
			Subsystem: "quote",
			Name:      "errors_total",
			Help:      "Total number of quote requests that returned an error, by operation and error kind.",
		}, []string{"operation", "kind"}),
		Latency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "elasticswap",
			Subsystem: "quote",
			Name:      "duration_seconds",
			Help:      "Quote computation latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	return m
}
