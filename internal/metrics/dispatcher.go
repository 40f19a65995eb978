package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatcherMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "netstats",
		Subsystem: "dispatcher",
		Name:      "messages_total",
		Help:      "Count of inbound messages by kind and outcome.",
	}, []string{"node", "kind", "outcome"})
	dispatcherHandleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "netstats",
		Subsystem: "dispatcher",
		Name:      "handle_duration_seconds",
		Help:      "Duration of handling one inbound message.",
		Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"node", "kind"})
)

// Dispatcher tracks inbound message handling of one node.
type Dispatcher struct {
	node string
}

func NewDispatcher(node string) *Dispatcher {
	return &Dispatcher{node: orUnknown(node)}
}

// ObserveMessage records the outcome and handling time of one message.
func (m Dispatcher) ObserveMessage(kind string, outcome string, started time.Time) {
	dispatcherMessagesTotal.WithLabelValues(m.node, kind, outcome).Inc()
	dispatcherHandleDuration.WithLabelValues(m.node, kind).Observe(since(started))
}
