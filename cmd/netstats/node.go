package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/spectre-netstats/internal/clock"
	"github.com/goodnatureofminers/spectre-netstats/internal/metrics"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/dispatch"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/service"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/spectred"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/stats"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/stream"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/window"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// historyRepository is what the ClickHouse repository offers to one node.
type historyRepository interface {
	service.SnapshotHistory
	service.BlockHistoryRepository
}

// node bundles the long-lived workers of one endpoint.
type node struct {
	tracker   *stats.Tracker
	collector *service.Collector
	publisher *service.Publisher
	history   *service.BlockHistory
}

func newNode(
	ep endpoint,
	cfg config,
	repo historyRepository,
	store service.SnapshotStore,
	logger *zap.Logger,
) (*node, error) {
	logger = logger.Named("node").With(zap.String("node", ep.Name), zap.String("addr", ep.Addr))

	w, err := window.New(cfg.WindowSize)
	if err != nil {
		return nil, err
	}
	cadence, err := cfg.cadence()
	if err != nil {
		return nil, err
	}
	tracker, err := stats.NewTracker(ep.Name, w, cadence, clock.Real, metrics.NewTracker(ep.Name))
	if err != nil {
		return nil, err
	}

	n := &node{tracker: tracker}
	var recorder dispatch.BlockRecorder
	var snapshots service.SnapshotHistory
	if repo != nil {
		n.history, err = service.NewBlockHistory(tracker, repo, logger.Named("blockHistory"))
		if err != nil {
			return nil, err
		}
		recorder = n.history
		snapshots = repo
	}

	dialer, err := spectred.NewDialer(ep.Addr, cfg.ConnectTimeout, logger)
	if err != nil {
		return nil, err
	}
	collectorMetrics := metrics.NewCollector(ep.Name)
	n.collector, err = service.NewCollector(
		service.CollectorConfig{
			Permits:            cfg.Permits,
			PermitTimeout:      cfg.PermitTimeout,
			SubscribeTemplates: cfg.SubscribeTemplates,
			RefreshOnTemplate:  !cfg.NoTemplateRefresh,
			RefreshInterval:    cfg.RefreshInterval,
			ReconnectDelay:     cfg.ReconnectDelay,
			ReconnectMaxDelay:  cfg.ReconnectMaxDelay,
		},
		stream.DialFunc(func(ctx context.Context) (stream.Stream, error) {
			s, err := dialer.Dial(ctx)
			if err != nil {
				return nil, err
			}
			return s, nil
		}),
		tracker,
		recorder,
		service.SessionMetrics{
			Stream:    metrics.NewStream(ep.Name),
			Dispatch:  metrics.NewDispatcher(ep.Name),
			Collector: collectorMetrics,
		},
		logger.Named("collector"),
	)
	if err != nil {
		return nil, fmt.Errorf("init collector: %w", err)
	}

	if store != nil || snapshots != nil {
		n.publisher, err = service.NewPublisher(tracker, store, snapshots, collectorMetrics, cfg.PublishInterval, logger.Named("publisher"))
		if err != nil {
			return nil, fmt.Errorf("init publisher: %w", err)
		}
	}
	return n, nil
}

// run blocks until ctx ends. Buffered block rows are flushed on the way out.
func (n *node) run(ctx context.Context) error {
	if n.history != nil {
		n.history.Start(ctx)
		defer n.history.Stop()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return n.collector.Run(gctx)
	})
	if n.publisher != nil {
		g.Go(func() error {
			return n.publisher.Run(gctx)
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
