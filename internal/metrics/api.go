package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "netstats",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Count of HTTP API requests.",
	}, []string{"route", "code"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "netstats",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

type API struct{}

func NewAPI() *API {
	return &API{}
}

// ObserveRequest records one served request.
func (API) ObserveRequest(route string, code int, started time.Time) {
	apiRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	apiRequestDuration.WithLabelValues(route).Observe(since(started))
}
