package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_cache_hits_total",
		Help: "Memoized lookups served from the TTL cache.",
	}, []string{"key"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_cache_misses_total",
		Help: "Memoized lookups that had to be recomputed.",
	}, []string{"key"})

	cacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_cache_errors_total",
		Help: "TTL cache read or write failures.",
	}, []string{"op"})

	featuredFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_featured_posts_failures_total",
		Help: "Featured posts selections that degraded to an empty result.",
	})

	featuredSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "portfolio_featured_posts_size",
		Help:    "Number of posts in each computed featured selection.",
		Buckets: []float64{0, 1, 2, 3},
	})

	releaseLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_release_lookups_total",
		Help: "GitHub latest-release lookups by repository and outcome.",
	}, []string{"repo", "outcome"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portfolio_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

func IncCacheHit(key string)  { cacheHits.WithLabelValues(key).Inc() }
func IncCacheMiss(key string) { cacheMisses.WithLabelValues(key).Inc() }
func IncCacheError(op string) { cacheErrors.WithLabelValues(op).Inc() }

func IncFeaturedFailure() { featuredFailures.Inc() }

func ObserveFeaturedSize(n int) { featuredSize.Observe(float64(n)) }

func IncReleaseLookup(repo, outcome string) { releaseLookups.WithLabelValues(repo, outcome).Inc() }

func ObserveHTTPRequest(route, method, status string, seconds float64) {
	httpRequests.WithLabelValues(route, method, status).Inc()
	httpDuration.WithLabelValues(route, method).Observe(seconds)
}
