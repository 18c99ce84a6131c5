package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "yonayona"

// Search outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
	OutcomeEmpty   = "empty"
)

// Cache lookup results.
const (
	CacheHit      = "hit"
	CacheMiss     = "miss"
	CacheError    = "error"
	CacheFallback = "geo_fallback"
)

var (
	SearchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "places_search_requests_total",
		Help:      "Nearby searches by outcome.",
	}, []string{"outcome"})

	UpstreamCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "places_upstream_cache_total",
		Help:      "Upstream result cache lookups by result.",
	}, []string{"result"})

	SearchOpenPlaces = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "places_search_open_places",
		Help:      "Open places returned per successful search.",
		Buckets:   []float64{0, 1, 2, 5, 10, 15, 20},
	})

	RelaxedSearchStepTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "places_relaxed_search_step_total",
		Help:      "Relaxed searches by the step that produced the answer.",
	}, []string{"step"})

	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
