// Package service runs the long-lived per-node workers: stream sessions, snapshot
// publication and block history.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/goodnatureofminers/spectre-netstats/internal/clock"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/dispatch"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/spectred"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/stream"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CollectorConfig struct {
	Permits       int64
	PermitTimeout time.Duration
	// SubscribeTemplates adds the new-block-template subscription to the handshake.
	SubscribeTemplates bool
	// RefreshOnTemplate requests DAG info on every template notification.
	RefreshOnTemplate bool
	// RefreshInterval re-requests DAG info and coin supply. Zero selects the default,
	// negative disables the refresh.
	RefreshInterval   time.Duration
	ReconnectDelay    time.Duration
	ReconnectMaxDelay time.Duration
}

// SessionMetrics groups the metrics of every layer a session builds.
type SessionMetrics struct {
	Stream    stream.Metrics
	Dispatch  dispatch.Metrics
	Collector CollectorMetrics
}

// Collector keeps one node session alive. Each session gets a fresh multiplexer and
// dispatcher; the tracker is shared by all of them.
type Collector struct {
	cfg      CollectorConfig
	dialer   stream.Dialer
	tracker  Tracker
	recorder dispatch.BlockRecorder
	metrics  SessionMetrics
	logger   *zap.Logger
	sleep    func(context.Context, time.Duration) error
	newID    func() string

	// shortSessions counts consecutive sessions that ended before ReconnectMaxDelay and
	// drives the reconnect backoff. Only the Run goroutine touches it.
	shortSessions uint
}

// NewCollector builds a Collector. recorder may be nil when block history is disabled.
func NewCollector(
	cfg CollectorConfig,
	dialer stream.Dialer,
	tracker Tracker,
	recorder dispatch.BlockRecorder,
	metrics SessionMetrics,
	logger *zap.Logger,
) (*Collector, error) {
	if dialer == nil {
		return nil, errors.New("dialer is required")
	}
	if tracker == nil {
		return nil, errors.New("tracker is required")
	}
	if metrics.Stream == nil || metrics.Dispatch == nil || metrics.Collector == nil {
		return nil, errors.New("collector metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = defaultReconnectDelay
	}
	if cfg.ReconnectMaxDelay < cfg.ReconnectDelay {
		cfg.ReconnectMaxDelay = max(defaultReconnectMaxDelay, cfg.ReconnectDelay)
	}

	return &Collector{
		cfg:      cfg,
		dialer:   dialer,
		tracker:  tracker,
		recorder: recorder,
		metrics:  metrics,
		logger:   logger.With(zap.String("node", tracker.Node())),
		sleep:    clock.SleepWithContext,
		newID:    uuid.NewString,
	}, nil
}

// Run reconnects with exponential backoff until ctx ends.
func (c *Collector) Run(ctx context.Context) error {
	err := retry.Do(
		func() error {
			return c.session(ctx)
		},
		retry.Attempts(0),
		retry.Delay(c.cfg.ReconnectDelay),
		retry.MaxDelay(c.cfg.ReconnectMaxDelay),
		retry.DelayType(c.backoff),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("session ended, reconnecting", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// backoff grows with every short session in a row. The attempt counter kept by retry is
// ignored because it never resets between sessions.
func (c *Collector) backoff(_ uint, err error, config *retry.Config) time.Duration {
	d := retry.BackOffDelay(c.shortSessions, err, config)
	c.shortSessions++
	return d
}

// sessionEnded resets the backoff once a session outlived the longest reconnect delay.
func (c *Collector) sessionEnded(lifetime time.Duration) {
	if lifetime >= c.cfg.ReconnectMaxDelay {
		c.shortSessions = 0
	}
}

func (c *Collector) handshake() []spectred.Request {
	kinds := []spectred.PayloadKind{
		spectred.KindNotifyBlockAddedRequest,
		spectred.KindNotifyVirtualDaaScoreChangedRequest,
	}
	if c.cfg.SubscribeTemplates {
		kinds = append(kinds, spectred.KindNotifyNewBlockTemplateRequest)
	}
	kinds = append(kinds, spectred.KindGetBlockDagInfoRequest, spectred.KindGetCoinSupplyRequest)

	reqs := make([]spectred.Request, 0, len(kinds))
	for _, kind := range kinds {
		reqs = append(reqs, spectred.NewRequest(kind))
	}
	return reqs
}

func (c *Collector) session(ctx context.Context) (err error) {
	started := time.Now()
	logger := c.logger.With(zap.String("session", c.newID()))
	defer func() {
		c.metrics.Collector.ObserveSession(err, started)
	}()

	mux, err := stream.NewMultiplexer(c.dialer, stream.Config{
		Permits:       c.cfg.Permits,
		PermitTimeout: c.cfg.PermitTimeout,
		Handshake:     c.handshake(),
	}, c.metrics.Stream, logger.Named("stream"))
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("build multiplexer: %w", err))
	}
	d, err := dispatch.NewDispatcher(
		dispatch.Config{RefreshOnTemplate: c.cfg.RefreshOnTemplate},
		mux.Permits(),
		mux,
		c.tracker,
		c.recorder,
		c.metrics.Dispatch,
		logger.Named("dispatch"),
	)
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("build dispatcher: %w", err))
	}

	sctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if c.cfg.RefreshInterval > 0 {
		go c.refresh(sctx, mux)
	}

	logger.Info("session started")
	err = mux.Run(sctx, d)
	lifetime := time.Since(started)
	c.sessionEnded(lifetime)
	logger.Info("session finished", zap.Duration("lifetime", lifetime), zap.Error(err))
	return err
}

// refresh keeps DAG info and coin supply current between notifications.
func (c *Collector) refresh(ctx context.Context, requester dispatch.Requester) {
	for {
		if err := c.sleep(ctx, c.cfg.RefreshInterval); err != nil {
			return
		}
		requester.Enqueue(spectred.NewRequest(spectred.KindGetBlockDagInfoRequest))
		requester.Enqueue(spectred.NewRequest(spectred.KindGetCoinSupplyRequest))
	}
}
