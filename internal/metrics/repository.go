package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "netstats",
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of storage operations.",
	}, []string{"backend", "operation", "status"})
	repositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "netstats",
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of storage operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"backend", "operation", "status"})
)

// Repository tracks operations of one storage backend.
type Repository struct {
	backend string
}

func NewClickhouseRepository() *Repository {
	return &Repository{backend: "clickhouse"}
}

func NewRedisRepository() *Repository {
	return &Repository{backend: "redis"}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	st := status(err)
	repositoryOperationsTotal.WithLabelValues(m.backend, operation, st).Inc()
	repositoryOperationDuration.WithLabelValues(m.backend, operation, st).Observe(since(started))
}
