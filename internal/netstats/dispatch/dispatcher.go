// Package dispatch routes inbound node messages to the stats tracker by payload kind.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/spectred"
	"go.uber.org/zap"
)

const (
	OutcomeHandled   = "handled"
	OutcomeDuplicate = "duplicate"
	OutcomeMalformed = "malformed"
	OutcomeUnknown   = "unknown"
	OutcomeFailed    = "failed"
	OutcomePanic     = "panic"
)

type handlerFunc func(ctx context.Context, msg spectred.Message) (string, error)

type Config struct {
	// RefreshOnTemplate requests fresh DAG info whenever the node announces a new block template.
	RefreshOnTemplate bool
}

// Dispatcher handles one session's inbound messages in arrival order. Handler failures,
// panics included, are logged and never reach the stream.
type Dispatcher struct {
	permits   Permits
	requester Requester
	tracker   Tracker
	recorder  BlockRecorder
	metrics   Metrics
	logger    *zap.Logger
	cfg       Config
	handlers  map[spectred.PayloadKind]handlerFunc
}

// NewDispatcher wires a dispatcher. recorder may be nil when block history is disabled.
func NewDispatcher(
	cfg Config,
	permits Permits,
	requester Requester,
	tracker Tracker,
	recorder BlockRecorder,
	metrics Metrics,
	logger *zap.Logger,
) (*Dispatcher, error) {
	if permits == nil {
		return nil, errors.New("permits is required")
	}
	if requester == nil {
		return nil, errors.New("requester is required")
	}
	if tracker == nil {
		return nil, errors.New("tracker is required")
	}
	if metrics == nil {
		return nil, errors.New("dispatcher metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	d := &Dispatcher{
		permits:   permits,
		requester: requester,
		tracker:   tracker,
		recorder:  recorder,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
	}
	d.handlers = map[spectred.PayloadKind]handlerFunc{
		spectred.KindNotifyBlockAddedResponse:             d.acknowledge,
		spectred.KindNotifyVirtualDaaScoreChangedResponse: d.acknowledge,
		spectred.KindNotifyNewBlockTemplateResponse:       d.acknowledge,
		spectred.KindGetBlockDagInfoResponse:              d.dagInfo,
		spectred.KindGetCoinSupplyResponse:                d.coinSupply,
		spectred.KindBlockAddedNotification:               d.blockAdded,
		spectred.KindVirtualDaaScoreChangedNotification:   d.daaScoreChanged,
		spectred.KindNewBlockTemplateNotification:         d.newBlockTemplate,
	}
	return d, nil
}

// Handle releases a permit for every response before looking at its payload, then runs
// the handler registered for the kind.
func (d *Dispatcher) Handle(ctx context.Context, msg spectred.Message) {
	started := time.Now()
	outcome := OutcomeHandled
	defer func() {
		if r := recover(); r != nil {
			outcome = OutcomePanic
			d.logger.Error("message handler panicked, stats unchanged",
				zap.Stringer("kind", msg.Kind),
				zap.Any("panic", r),
			)
		}
		d.metrics.ObserveMessage(msg.Kind.String(), outcome, started)
	}()

	// Replies outside the kind table, such as errors to unsupported requests, still carry
	// the echoed envelope ID of the request they answer.
	if msg.Kind.IsResponse() || (!msg.Kind.Known() && msg.ID != 0) {
		if !d.permits.Release(msg.ID) {
			d.logger.Debug("response without outstanding request",
				zap.Stringer("kind", msg.Kind),
				zap.Uint64("id", msg.ID),
			)
		}
	}

	handler, ok := d.handlers[msg.Kind]
	if !ok {
		outcome = OutcomeUnknown
		d.logger.Debug("message dropped",
			zap.Error(fmt.Errorf("%w: %s", model.ErrProtocol, msg.Kind)),
			zap.Uint64("id", msg.ID),
		)
		return
	}

	var err error
	outcome, err = handler(ctx, msg)
	if err != nil {
		d.logger.Warn("message skipped",
			zap.Stringer("kind", msg.Kind),
			zap.String("outcome", outcome),
			zap.Error(err),
		)
	}
}

func (d *Dispatcher) acknowledge(_ context.Context, msg spectred.Message) (string, error) {
	if err := msg.ResponseError(); err != nil {
		return OutcomeFailed, fmt.Errorf("subscription rejected: %w", err)
	}
	return OutcomeHandled, nil
}

func (d *Dispatcher) dagInfo(_ context.Context, msg spectred.Message) (string, error) {
	info, err := msg.DagInfo()
	if err != nil {
		return OutcomeFailed, err
	}
	d.tracker.ObserveNetworkInfo(info.NetworkInfo())
	return OutcomeHandled, nil
}

func (d *Dispatcher) coinSupply(_ context.Context, msg spectred.Message) (string, error) {
	supply, err := msg.CoinSupply()
	if err != nil {
		return OutcomeFailed, err
	}
	d.tracker.ObserveSupply(supply.Supply())
	return OutcomeHandled, nil
}

func (d *Dispatcher) blockAdded(_ context.Context, msg spectred.Message) (string, error) {
	blk, err := msg.BlockAdded()
	if err != nil {
		return OutcomeMalformed, fmt.Errorf("%w: %v", model.ErrMalformedBlock, err)
	}
	rec, err := blk.Record()
	if err != nil {
		return OutcomeMalformed, err
	}

	if !d.tracker.ObserveBlock(rec) {
		return OutcomeDuplicate, nil
	}
	if d.recorder != nil {
		d.recorder.RecordBlock(rec)
	}
	return OutcomeHandled, nil
}

func (d *Dispatcher) daaScoreChanged(_ context.Context, msg spectred.Message) (string, error) {
	score, err := msg.VirtualDaaScore()
	if err != nil {
		return OutcomeFailed, err
	}
	d.tracker.ObserveProgress(score)
	return OutcomeHandled, nil
}

func (d *Dispatcher) newBlockTemplate(_ context.Context, _ spectred.Message) (string, error) {
	if d.cfg.RefreshOnTemplate {
		d.requester.Enqueue(spectred.NewRequest(spectred.KindGetBlockDagInfoRequest))
	}
	return OutcomeHandled, nil
}
