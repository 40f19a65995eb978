package service

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/clock"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"go.uber.org/zap"
)

const (
	targetStore   = "store"
	targetHistory = "history"
)

// Publisher periodically pushes a node's snapshot to the snapshot store and appends it
// to history. Publication failures are logged and retried on the next tick.
type Publisher struct {
	source   SnapshotSource
	store    SnapshotStore
	history  SnapshotHistory
	metrics  CollectorMetrics
	interval time.Duration
	clock    clock.Clock
	sleep    func(context.Context, time.Duration) error
	logger   *zap.Logger

	lastSampled time.Time
}

// NewPublisher builds a Publisher. store and history are optional but not both.
func NewPublisher(
	source SnapshotSource,
	store SnapshotStore,
	history SnapshotHistory,
	metrics CollectorMetrics,
	interval time.Duration,
	logger *zap.Logger,
) (*Publisher, error) {
	if source == nil {
		return nil, errors.New("snapshot source is required")
	}
	if store == nil && history == nil {
		return nil, errors.New("snapshot store or history is required")
	}
	if metrics == nil {
		return nil, errors.New("publisher metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if interval <= 0 {
		interval = defaultPublishInterval
	}

	return &Publisher{
		source:   source,
		store:    store,
		history:  history,
		metrics:  metrics,
		interval: interval,
		clock:    clock.Real,
		sleep:    clock.SleepWithContext,
		logger:   logger.With(zap.String("node", source.Node())),
	}, nil
}

// Run publishes every interval until ctx ends.
func (p *Publisher) Run(ctx context.Context) error {
	for {
		p.publish(ctx)
		if err := p.sleep(ctx, p.interval); err != nil {
			return err
		}
	}
}

func (p *Publisher) publish(ctx context.Context) {
	snapshot := p.source.Snapshot()

	if p.store != nil {
		started := time.Now()
		err := p.store.SaveSnapshot(ctx, snapshot)
		p.metrics.ObservePublish(targetStore, err, started)
		if err != nil {
			p.logger.Warn("save snapshot failed", zap.Error(err))
		}
	}

	// history only gets a row when the snapshot changed since the last one written
	if p.history == nil || !snapshot.UpdatedAt.After(p.lastSampled) {
		return
	}
	started := time.Now()
	err := p.history.InsertSnapshots(ctx, []model.SnapshotRow{snapshot.Row(p.clock.Now())})
	p.metrics.ObservePublish(targetHistory, err, started)
	if err != nil {
		p.logger.Warn("insert snapshot failed", zap.Error(err))
		return
	}
	p.lastSampled = snapshot.UpdatedAt
}
