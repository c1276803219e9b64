// Package metrics exposes Prometheus collectors for the savings service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-petr/pet-savings/internal/domain"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pet_savings",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pet_savings",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pet_savings",
			Subsystem: "core",
			Name:      "operations_total",
			Help:      "Ledger and pool operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)

	totalValueLocked = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pet_savings",
			Subsystem: "ledger",
			Name:      "total_value_locked",
			Help:      "Funds held directly by the ledger, in whole units.",
		},
	)

	totalShareUnits = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pet_savings",
			Subsystem: "pool",
			Name:      "total_share_units",
			Help:      "Share units minted across all owners.",
		},
	)

	automationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pet_savings",
			Subsystem: "automation",
			Name:      "decisions_total",
			Help:      "Automation sweep decisions by result.",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		operations,
		totalValueLocked,
		totalShareUnits,
		automationRuns,
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Outcome converts an operation error into a low-cardinality label.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}

	if kind := domain.Kind(err); kind != nil {
		return kind.Error()
	}

	return "internal"
}

// ObserveOperation counts one core operation.
func ObserveOperation(operation string, err error) {
	operations.WithLabelValues(operation, Outcome(err)).Inc()
}

// SetTotalValueLocked publishes the ledger aggregate.
func SetTotalValueLocked(tvl float64) {
	totalValueLocked.Set(tvl)
}

// SetTotalShareUnits publishes the pool aggregate.
func SetTotalShareUnits(units int64) {
	totalShareUnits.Set(float64(units))
}

// ObserveAutomation counts one automation decision ("saved", "skipped", "failed").
func ObserveAutomation(result string) {
	automationRuns.WithLabelValues(result).Inc()
}
