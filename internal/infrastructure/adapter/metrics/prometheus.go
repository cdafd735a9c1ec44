package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/database"
)

const namespace = "ledger"

var (
	_ coreport.LedgerMetrics   = (*Collector)(nil)
	_ database.MetricsObserver = (*Collector)(nil)
)

// Collector owns every ledger metric on its own registry
type Collector struct {
	registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	blockTransitions  *prometheus.CounterVec
	outboxPublished   *prometheus.CounterVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbSlowQueries   prometheus.Counter
	dbPoolOpen      prometheus.Gauge
	dbPoolInUse     prometheus.Gauge
	dbPoolIdle      prometheus.Gauge
	dbPoolWaitCount prometheus.Gauge
}

// NewCollector registers the ledger metrics plus the Go and process collectors on a fresh registry
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		operationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Ledger operations by outcome (success, replayed or error kind)",
		}, []string{"operation", "outcome"}),

		operationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of ledger operations in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
		}, []string{"operation"}),

		blockTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "block_transitions_total",
			Help:      "Changes of the blocked flag by direction and reason",
		}, []string{"blocked", "reason"}),

		outboxPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Outbox events handled by the relay",
		}, []string{"outcome"}),

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Duration of SQL statements in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"operation", "table", "failed"}),

		dbSlowQueries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "slow_queries_total",
			Help:      "SQL statements slower than the configured threshold",
		}),

		dbPoolOpen: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "open_connections",
			Help:      "Open connections in the database pool",
		}),
		dbPoolInUse: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "in_use_connections",
			Help:      "Connections currently in use",
		}),
		dbPoolIdle: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "idle_connections",
			Help:      "Idle connections in the pool",
		}),
		dbPoolWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "wait_count",
			Help:      "Total number of connections waited for",
		}),
	}
}

// Registry exposes the registry for tests and extra collectors
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveOperation implements core.LedgerMetrics
func (c *Collector) ObserveOperation(operation, outcome string, duration time.Duration) {
	c.operationsTotal.WithLabelValues(operation, outcome).Inc()
	c.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveBlockTransition implements core.LedgerMetrics
func (c *Collector) ObserveBlockTransition(blocked bool, reason string) {
	c.blockTransitions.WithLabelValues(strconv.FormatBool(blocked), reason).Inc()
}

// ObserveOutboxPublish implements core.LedgerMetrics
func (c *Collector) ObserveOutboxPublish(outcome string, count int) {
	if count <= 0 {
		return
	}
	c.outboxPublished.WithLabelValues(outcome).Add(float64(count))
}

// ObserveHTTP records one served request
func (c *Collector) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unknown"
	}
	c.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveQuery implements database.MetricsObserver
func (c *Collector) ObserveQuery(m database.QueryMetrics) {
	table := m.Table
	if table == "" {
		table = "none"
	}
	c.dbQueryDuration.WithLabelValues(m.Operation, table, strconv.FormatBool(m.Failed)).Observe(m.Duration.Seconds())
	if m.Slow {
		c.dbSlowQueries.Inc()
	}
}

// ObservePool implements database.MetricsObserver
func (c *Collector) ObservePool(stats sql.DBStats) {
	c.dbPoolOpen.Set(float64(stats.OpenConnections))
	c.dbPoolInUse.Set(float64(stats.InUse))
	c.dbPoolIdle.Set(float64(stats.Idle))
	c.dbPoolWaitCount.Set(float64(stats.WaitCount))
}
