package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vvclient_api_requests_total",
			Help: "Total number of calls made to the recharge API",
		},
		[]string{"method", "path", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vvclient_api_request_duration_seconds",
			Help:    "Recharge API call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vvclient_notifications_total",
			Help: "Total number of notifications shown to the user",
		},
		[]string{"severity"},
	)

	UIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vvclient_ui_requests_total",
			Help: "Total number of requests served by the local UI",
		},
		[]string{"method", "status"},
	)

	RechargeSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vvclient_recharge_submissions_total",
			Help: "Recharge submissions by outcome",
		},
		[]string{"outcome"},
	)
)

// Status maps an HTTP status code to its class label ("2xx", "4xx", ...); 0 means transport failure.
func Status(code int) string {
	if code <= 0 {
		return "error"
	}
	return fmt.Sprintf("%dxx", code/100)
}
