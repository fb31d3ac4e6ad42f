// Package metrics exposes Prometheus metrics for the patternlab object pools,
// notification services, ecosystem events and requests, and cafeteria orders.
//
// # Basic Usage
//
//	collector := metrics.NewPoolCollector("person")
//	p := pool.New(3, newPerson, resetPerson, pool.WithMetrics(collector))
//
//	// Notifications are counted per channel
//	metrics.NotificationsSent.WithLabelValues("email", "standard").Inc()
//
// Metrics are registered on the default Prometheus registry through promauto
// when the package is loaded. WriteText renders them in the text exposition
// format:
//
//	metrics.WriteText(os.Stdout, prometheus.DefaultGatherer)
package metrics

import (
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Namespace prefixes every metric defined here.
const Namespace = "patternlab"

var (
	// PoolBorrows counts Borrow calls by outcome.
	// Labels: pool (pool name), source (reused/created)
	PoolBorrows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patternlab_pool_borrows_total",
			Help: "Total number of instances handed out by a pool",
		},
		[]string{"pool", "source"},
	)

	// PoolReleases counts Release calls by outcome.
	// Labels: pool, outcome (stored/discarded)
	PoolReleases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patternlab_pool_releases_total",
			Help: "Total number of instances returned to a pool",
		},
		[]string{"pool", "outcome"},
	)

	// PoolIdle tracks the idle instances currently held by a pool.
	PoolIdle = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "patternlab_pool_idle",
			Help: "Idle instances currently stored in a pool",
		},
		[]string{"pool"},
	)

	// PoolCapacity tracks the configured bound of a pool.
	PoolCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "patternlab_pool_capacity",
			Help: "Maximum idle instances a pool may store",
		},
		[]string{"pool"},
	)

	// NotificationsSent counts notifications by channel and service kind.
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patternlab_notifications_sent_total",
			Help: "Total number of notifications rendered",
		},
		[]string{"channel", "service"},
	)

	// EcosystemEvents counts animal events delivered to observers.
	// Labels: event (fed, moved, treated, ...)
	EcosystemEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patternlab_ecosystem_events_total",
			Help: "Total number of animal events published to observers",
		},
		[]string{"event"},
	)

	// RequestsHandled counts ecosystem requests by the handler that took them.
	// Unhandled requests use the handler label "none".
	RequestsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patternlab_requests_handled_total",
			Help: "Total number of ecosystem requests resolved by the handler chain",
		},
		[]string{"handler"},
	)

	// OrdersProcessed counts cafeteria orders by outcome (served/refused).
	OrdersProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patternlab_orders_processed_total",
			Help: "Total number of cafeteria orders run through the coordinator",
		},
		[]string{"outcome"},
	)
)

// PoolCollector records the lifecycle events of one named pool.
// A nil *PoolCollector is valid and records nothing.
type PoolCollector struct {
	name string
}

// NewPoolCollector creates a collector for the pool with the given name.
func NewPoolCollector(name string) *PoolCollector {
	return &PoolCollector{name: name}
}

// Name returns the pool label used by the collector.
func (c *PoolCollector) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Borrowed records a Borrow; reused tells whether an idle instance was handed out.
func (c *PoolCollector) Borrowed(reused bool, idle int) {
	if c == nil {
		return
	}
	source := "created"
	if reused {
		source = "reused"
	}
	PoolBorrows.WithLabelValues(c.name, source).Inc()
	PoolIdle.WithLabelValues(c.name).Set(float64(idle))
}

// Released records a Release; stored is false when the instance was discarded.
func (c *PoolCollector) Released(stored bool, idle int) {
	if c == nil {
		return
	}
	outcome := "discarded"
	if stored {
		outcome = "stored"
	}
	PoolReleases.WithLabelValues(c.name, outcome).Inc()
	PoolIdle.WithLabelValues(c.name).Set(float64(idle))
}

// Configured records the capacity of the pool.
func (c *PoolCollector) Configured(capacity int) {
	if c == nil {
		return
	}
	PoolCapacity.WithLabelValues(c.name).Set(float64(capacity))
	PoolIdle.WithLabelValues(c.name).Set(0)
}

// WriteText gathers from g and writes every patternlab family in the
// Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), Namespace+"_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
