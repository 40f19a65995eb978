package metrics

import (
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	trackerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "netstats",
		Subsystem: "tracker",
		Name:      "blocks_total",
		Help:      "Count of block notifications offered to the window.",
	}, []string{"node", "result"})
	trackerWindowSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "netstats",
		Subsystem: "tracker",
		Name:      "window_size",
		Help:      "Blocks currently retained in the window.",
	}, []string{"node"})
	trackerProgress = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "netstats",
		Subsystem: "tracker",
		Name:      "progress",
		Help:      "Latest virtual DAA score.",
	}, []string{"node"})
	trackerBlocksPerSecond = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "netstats",
		Subsystem: "tracker",
		Name:      "blocks_per_second",
		Help:      "Block rate derived from the average interval.",
	}, []string{"node"})
	trackerAverageInterval = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "netstats",
		Subsystem: "tracker",
		Name:      "average_interval_seconds",
		Help:      "Average interval between blocks.",
	}, []string{"node"})
	trackerTxPerSecond = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "netstats",
		Subsystem: "tracker",
		Name:      "tx_per_second",
		Help:      "Transactions per second over the window span.",
	}, []string{"node"})
)

// Tracker exports the latest stats of one node.
type Tracker struct {
	node string
}

func NewTracker(node string) *Tracker {
	return &Tracker{node: orUnknown(node)}
}

func (m Tracker) ObserveBlock(accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	trackerBlocksTotal.WithLabelValues(m.node, result).Inc()
}

// ObserveSnapshot mirrors a published snapshot into gauges. Undefined stats keep their last value.
func (m Tracker) ObserveSnapshot(s model.Snapshot) {
	trackerWindowSize.WithLabelValues(m.node).Set(float64(s.WindowSize))
	trackerProgress.WithLabelValues(m.node).Set(float64(s.Progress))
	if c := s.Cadence; c != nil {
		trackerBlocksPerSecond.WithLabelValues(m.node).Set(c.Rate)
		trackerAverageInterval.WithLabelValues(m.node).Set(c.AverageInterval.Seconds())
	}
	if t := s.Throughput; t != nil {
		trackerTxPerSecond.WithLabelValues(m.node).Set(t.TxPerSecond)
	}
}
