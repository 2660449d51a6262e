package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	SessionStoreOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "session_store_operation_duration_seconds",
			Help:    "Session state store operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)
	SessionStoreErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_errors_total",
			Help: "Total number of failed session state store operations",
		},
		[]string{"backend", "operation"},
	)
	FormRelaySubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_relay_submissions_total",
			Help: "Contact form submissions relayed, by outcome",
		},
		[]string{"outcome"},
	)
	FormRelayDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "form_relay_duration_seconds",
			Help:    "Form relay round trip in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
	CarouselImageFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carousel_image_failures_total",
			Help: "Image load failures reported by galleries",
		},
		[]string{"exhausted"},
	)
	HandoffConsumedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_handoff_consumed_total",
			Help: "Pending contact handoffs consumed on home page mount, by outcome",
		},
		[]string{"outcome"},
	)
)

var registerOnce sync.Once

// Init registers all collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			SessionStoreOperationDuration,
			SessionStoreErrorsTotal,
			FormRelaySubmissionsTotal,
			FormRelayDuration,
			CarouselImageFailuresTotal,
			HandoffConsumedTotal,
		)
	})
}
