package transiter

import "github.com/prometheus/client_golang/prometheus"

var upstreamRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "subwaydisplayhub_upstream_requests_total",
		Help: "Requests issued to the upstream transit API",
	},
	[]string{"resource"},
)

var upstreamErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "subwaydisplayhub_upstream_errors_total",
		Help: "Upstream transit API requests that failed or returned garbage",
	},
	[]string{"resource"},
)

func init() {
	prometheus.MustRegister(upstreamRequests)
	prometheus.MustRegister(upstreamErrors)
}
