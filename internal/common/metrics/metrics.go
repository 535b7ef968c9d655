// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by handler and status",
		},
		[]string{"handler", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"handler"},
	)

	EmailDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_deliveries_total",
			Help: "Total transactional email deliveries by kind and outcome",
		},
		[]string{"kind", "status"},
	)

	CheckoutSessionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_created_total",
			Help: "Checkout sessions created by purchase type",
		},
		[]string{"type"},
	)

	SignedURLsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signed_urls_issued_total",
			Help: "Download URLs presigned for completed orders",
		},
	)
)
