package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectorSessionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "netstats",
		Subsystem: "collector",
		Name:      "sessions_total",
		Help:      "Count of finished node sessions.",
	}, []string{"node", "status"})
	collectorSessionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "netstats",
		Subsystem: "collector",
		Name:      "session_duration_seconds",
		Help:      "Lifetime of node sessions.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"node", "status"})
	collectorPublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "netstats",
		Subsystem: "collector",
		Name:      "publish_total",
		Help:      "Count of snapshot publications.",
	}, []string{"node", "target", "status"})
	collectorPublishDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "netstats",
		Subsystem: "collector",
		Name:      "publish_duration_seconds",
		Help:      "Duration of snapshot publications.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"node", "target", "status"})
)

// Collector tracks session lifecycle and snapshot publishing of one node.
type Collector struct {
	node string
}

func NewCollector(node string) *Collector {
	return &Collector{node: orUnknown(node)}
}

// ObserveSession records how a session ended and how long it lived.
func (m Collector) ObserveSession(err error, started time.Time) {
	st := status(err)
	collectorSessionsTotal.WithLabelValues(m.node, st).Inc()
	collectorSessionDuration.WithLabelValues(m.node, st).Observe(since(started))
}

// ObservePublish records one publication of the snapshot to target.
func (m Collector) ObservePublish(target string, err error, started time.Time) {
	st := status(err)
	collectorPublishTotal.WithLabelValues(m.node, target, st).Inc()
	collectorPublishDuration.WithLabelValues(m.node, target, st).Observe(since(started))
}
