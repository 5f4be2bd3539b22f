package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UnmatchedRoute labels requests that did not hit a registered route.
const UnmatchedRoute = "unmatched"

var (
	// RequestsTotal - 총 요청 수
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "k8s_hello_requests_total",
			Help: "Total number of HTTP requests handled by the service",
		},
		[]string{"route", "method", "status"},
	)

	// RequestDuration - 요청 처리 시간
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "k8s_hello_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)
