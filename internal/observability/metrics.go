// Package observability defines the Prometheus metrics for the API. Metrics
// are registered once at startup and exposed at /metrics; all operations on
// them are thread-safe.
package observability

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "receitas"

// Metrics holds the process-wide metric instruments. Initialize once at
// startup via NewMetrics.
type Metrics struct {
	// RequestsTotal counts HTTP requests by route template and status code.
	RequestsTotal *prometheus.CounterVec

	// CatalogSize reports the number of recipes loaded at startup.
	CatalogSize prometheus.Gauge

	// ContextSends counts mailbox deposits, including overwrites.
	ContextSends prometheus.Counter

	// ContextOverwrites counts deposits that replaced an unconsumed value.
	ContextOverwrites prometheus.Counter

	// ContextTakes counts mailbox reads by outcome (hit, miss).
	ContextTakes *prometheus.CounterVec
}

// NewMetrics registers the metric set against reg and returns it. Tests
// pass a fresh prometheus.NewRegistry; production wiring passes
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		CatalogSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_recipes",
			Help:      "Number of recipes in the loaded catalog.",
		}),
		ContextSends: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "context",
			Name:      "sends_total",
			Help:      "Context mailbox deposits.",
		}),
		ContextOverwrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "context",
			Name:      "overwrites_total",
			Help:      "Context mailbox deposits that replaced an unconsumed value.",
		}),
		ContextTakes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "context",
			Name:      "takes_total",
			Help:      "Context mailbox reads by outcome.",
		}, []string{"outcome"}),
	}
}

// Middleware returns a gin middleware that counts every request against
// RequestsTotal. Raw paths of unmatched routes would explode label
// cardinality, so those are bucketed as "unmatched".
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
