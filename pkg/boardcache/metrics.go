package boardcache

import "github.com/prometheus/client_golang/prometheus"

var cacheHits = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "subwaydisplayhub_cache_hits_total",
		Help: "Reads served from a live cache entry",
	},
	[]string{"cache"},
)

var cacheMisses = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "subwaydisplayhub_cache_misses_total",
		Help: "Reads that fell through to the fetcher",
	},
	[]string{"cache"},
)

func init() {
	prometheus.MustRegister(cacheHits)
	prometheus.MustRegister(cacheMisses)
}
