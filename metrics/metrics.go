// metrics/metrics.go - Prometheus instrumentation
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	ContactsReceivedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contacts_received_total",
			Help: "Total number of contact submissions received",
		},
	)

	ContactsAcceptedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contacts_accepted_total",
			Help: "Total number of contact submissions stored",
		},
	)

	ContactsRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contacts_rejected_total",
			Help: "Total number of contact submissions rejected by validation",
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(ContactsReceivedTotal)
	prometheus.MustRegister(ContactsAcceptedTotal)
	prometheus.MustRegister(ContactsRejectedTotal)
}

// Middleware records request count and duration for one handler.
func Middleware(handler string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(handler, c.Request.Method, status).Inc()
		httpRequestDuration.WithLabelValues(handler, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
