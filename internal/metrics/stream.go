package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "netstats",
		Subsystem: "stream",
		Name:      "sent_total",
		Help:      "Count of requests sent to the node.",
	}, []string{"node", "kind"})
	streamReceivedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "netstats",
		Subsystem: "stream",
		Name:      "received_total",
		Help:      "Count of messages received from the node.",
	}, []string{"node", "kind"})
	streamPermitsInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "netstats",
		Subsystem: "stream",
		Name:      "permits_in_flight",
		Help:      "Requests sent and not yet answered.",
	}, []string{"node"})
	streamPermitLeaksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "netstats",
		Subsystem: "stream",
		Name:      "permit_leaks_total",
		Help:      "Count of permits reclaimed after the response timeout.",
	}, []string{"node"})
)

// Stream tracks message flow of one node stream.
type Stream struct {
	node string
}

func NewStream(node string) *Stream {
	return &Stream{node: orUnknown(node)}
}

func (m Stream) ObserveSent(kind string) {
	streamSentTotal.WithLabelValues(m.node, kind).Inc()
}

func (m Stream) ObserveReceived(kind string) {
	streamReceivedTotal.WithLabelValues(m.node, kind).Inc()
}

func (m Stream) SetPermitsInFlight(n int) {
	streamPermitsInFlight.WithLabelValues(m.node).Set(float64(n))
}

func (m Stream) ObservePermitLeak() {
	streamPermitLeaksTotal.WithLabelValues(m.node).Inc()
}
