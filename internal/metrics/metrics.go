// Package metrics provides Prometheus metrics collection for the localization service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// KeyQueriesTotal tracks translation key list queries by outcome.
	KeyQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_key_queries_total",
			Help: "Total number of translation key list queries",
		},
		[]string{"status"},
	)

	// KeyQueryDuration tracks translation key list query duration, filtering
	// and pagination included.
	KeyQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "translation_key_query_duration_seconds",
			Help:    "Translation key list query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// CacheOperationsTotal tracks localization cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "localization_cache_operations_total",
			Help: "Total number of localization cache operations",
		},
		[]string{"operation", "result"},
	)

	// TranslationUpdatesTotal tracks translation value writes by operation and outcome.
	TranslationUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_updates_total",
			Help: "Total number of translation value writes",
		},
		[]string{"operation", "status"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordKeyQuery records metrics for one translation key list query.
func RecordKeyQuery(duration time.Duration, status string) {
	KeyQueryDuration.Observe(duration.Seconds())
	KeyQueriesTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records metrics for a localization cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordTranslationUpdate records metrics for a translation write.
func RecordTranslationUpdate(operation, status string) {
	TranslationUpdatesTotal.WithLabelValues(operation, status).Inc()
}
