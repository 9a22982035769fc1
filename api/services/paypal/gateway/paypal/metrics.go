package paypalgw

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paypal",
		Name:      "api_requests_total",
		Help:      "PayPal REST calls by operation and HTTP status code (\"error\" for transport failures).",
	}, []string{"operation", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "paypal",
		Name:      "api_request_duration_seconds",
		Help:      "Latency of PayPal REST calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

func observe(op, code string, start time.Time) {
	requestsTotal.WithLabelValues(op, code).Inc()
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
