package upstream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	upstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "The total number of requests to remote functions",
		},
		[]string{"resource", "method", "status"},
	)

	upstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "upstream_request_duration_seconds",
			Help: "The remote function request latencies in seconds",
		},
		[]string{"resource", "method"},
	)
)

func init() {
	prometheus.MustRegister(upstreamRequestsTotal)
	prometheus.MustRegister(upstreamRequestDuration)
}

func observeUpstream(resource, method, status string, d time.Duration) {
	upstreamRequestsTotal.WithLabelValues(resource, method, status).Inc()
	upstreamRequestDuration.WithLabelValues(resource, method).Observe(d.Seconds())
}
