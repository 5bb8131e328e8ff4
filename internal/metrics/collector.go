// Package metrics собирает телеметрию стора и адаптеров в реестр Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/example/storefront-state/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector реализует store.Observer и учитывает обмен с бэкендом.
type Collector struct {
	registry *prometheus.Registry

	actionsTotal  *prometheus.CounterVec
	reduceLatency prometheus.Histogram
	subscribers   prometheus.Gauge

	forwardedTotal *prometheus.CounterVec
	incomingTotal  *prometheus.CounterVec
	snapshotsTotal *prometheus.CounterVec
}

var _ store.Observer = (*Collector)(nil)

func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "storefront"
	}
	c := &Collector{registry: prometheus.NewRegistry()}

	c.actionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "actions_total",
			Help:      "Actions applied by the store",
		},
		[]string{"kind"},
	)
	c.reduceLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "reduce_duration_seconds",
		Help:      "Time spent reducing and publishing a single action",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})
	c.subscribers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "subscribers",
		Help:      "Active state subscriptions",
	})
	c.forwardedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "requests_forwarded_total",
			Help:      "Remote requests forwarded to the backend",
		},
		[]string{"kind", "result"},
	)
	c.incomingTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "messages_received_total",
			Help:      "Backend messages received",
		},
		[]string{"result"},
	)
	c.snapshotsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "writes_total",
			Help:      "State snapshot writes",
		},
		[]string{"slice", "result"},
	)

	c.registry.MustRegister(
		c.actionsTotal,
		c.reduceLatency,
		c.subscribers,
		c.forwardedTotal,
		c.incomingTotal,
		c.snapshotsTotal,
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler отдаёт метрики в формате экспозиции Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) ActionReduced(kind store.Kind, d time.Duration) {
	c.actionsTotal.WithLabelValues(string(kind)).Inc()
	c.reduceLatency.Observe(d.Seconds())
}

func (c *Collector) SubscribersChanged(n int) {
	c.subscribers.Set(float64(n))
}

func (c *Collector) RecordForwarded(kind store.Kind, err error) {
	c.forwardedTotal.WithLabelValues(string(kind), result(err)).Inc()
}

func (c *Collector) RecordIncoming(err error) {
	c.incomingTotal.WithLabelValues(result(err)).Inc()
}

func (c *Collector) RecordSnapshot(slice string, err error) {
	c.snapshotsTotal.WithLabelValues(slice, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
