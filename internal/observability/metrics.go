package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
)

var (
	upstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_board",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Requests issued to the activities API, by operation and outcome.",
	}, []string{"operation", "outcome"})
	upstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activity_board",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Latency of requests to the activities API.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

func init() {
	prometheus.MustRegister(upstreamRequests, upstreamDuration)
}

// RecordUpstream counts one finished upstream call and observes its latency.
func RecordUpstream(operation, outcome string, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(operation, outcome).Inc()
	upstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
