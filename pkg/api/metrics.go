package api

import "github.com/prometheus/client_golang/prometheus"

var requestDuration = prometheus.NewSummary(prometheus.SummaryOpts{
	Name: "subwaydisplayhub_request_duration_seconds",
	Help: "Time spent answering API requests",
})

func init() {
	prometheus.MustRegister(requestDuration)
}
