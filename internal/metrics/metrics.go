package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the dashboard.
type Metrics struct {
	RequestsTotal *prometheus.CounterVec // labels: endpoint, status
	PipelineDur   prometheus.Histogram
	FetchDur      prometheus.Histogram
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
}

// New registers all metrics on the given registerer and returns them.
// Pass prometheus.DefaultRegisterer in main, a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "HTTP requests served, by endpoint and status code",
		}, []string{"endpoint", "status"}),
		PipelineDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_pipeline_duration_seconds",
			Help:    "Full fetch-compute-build pipeline latency",
			Buckets: prometheus.DefBuckets,
		}),
		FetchDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_fetch_duration_seconds",
			Help:    "Upstream data source fetch latency",
			Buckets: prometheus.DefBuckets,
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_fetch_cache_hits_total",
			Help: "Fetches served from the in-process memoization cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_fetch_cache_misses_total",
			Help: "Fetches that went to the upstream source",
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.PipelineDur,
		m.FetchDur,
		m.CacheHits,
		m.CacheMisses,
	)

	return m
}
