// Package stream multiplexes outbound requests and inbound messages over one node stream.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/spectred"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultPermits is the number of requests allowed in flight when Config.Permits is zero.
const DefaultPermits = 190

var (
	// ErrAlreadyStarted is returned by a second Run on the same Multiplexer.
	ErrAlreadyStarted = errors.New("multiplexer already started")
	// ErrStreamClosed is returned when the node ends the stream with EOF.
	ErrStreamClosed = errors.New("message stream closed by node")
)

// Config tunes one Multiplexer session.
type Config struct {
	// Permits bounds requests in flight. Zero selects DefaultPermits.
	Permits int64
	// PermitTimeout reclaims permits of unanswered requests. Zero disables reclaiming.
	PermitTimeout time.Duration
	// Handshake requests are sent first, as soon as the stream is open.
	Handshake []spectred.Request
}

// Multiplexer owns one stream session. Outbound requests wait in an unbounded queue and
// are sent one permit at a time; inbound messages go to the Handler in arrival order.
// A Multiplexer runs once; reconnecting means building a new one.
type Multiplexer struct {
	dialer    Dialer
	handshake []spectred.Request
	permits   *Permits
	queue     *queue
	metrics   Metrics
	logger    *zap.Logger
	started   atomic.Bool
	lastID    atomic.Uint64
}

// NewMultiplexer validates cfg and builds an idle Multiplexer.
func NewMultiplexer(dialer Dialer, cfg Config, metrics Metrics, logger *zap.Logger) (*Multiplexer, error) {
	if dialer == nil {
		return nil, errors.New("dialer is required")
	}
	if metrics == nil {
		return nil, errors.New("multiplexer metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Permits < 0 {
		return nil, fmt.Errorf("permits must not be negative, got %d", cfg.Permits)
	}
	if cfg.PermitTimeout < 0 {
		return nil, fmt.Errorf("permit timeout must not be negative, got %s", cfg.PermitTimeout)
	}

	size := cfg.Permits
	if size == 0 {
		size = DefaultPermits
	}

	m := &Multiplexer{
		dialer:    dialer,
		handshake: append([]spectred.Request(nil), cfg.Handshake...),
		queue:     newQueue(),
		metrics:   metrics,
		logger:    logger,
	}
	m.permits = NewPermits(size, cfg.PermitTimeout, func() {
		metrics.ObservePermitLeak()
		logger.Warn("request permit reclaimed", zap.Error(model.ErrPermitLeak), zap.Duration("timeout", cfg.PermitTimeout))
	})
	return m, nil
}

// Enqueue appends req to the outbound queue. It never blocks. The envelope ID is assigned
// when the request is sent.
func (m *Multiplexer) Enqueue(req spectred.Request) {
	m.queue.push(queueItem{req: req})
}

// Close enqueues the stop sentinel. Requests queued before it are still sent, then the
// send side is half-closed. The receive side keeps running until the stream ends.
func (m *Multiplexer) Close() {
	m.queue.push(queueItem{stop: true})
}

// Permits exposes the pool so the message handler can release permits on responses.
func (m *Multiplexer) Permits() *Permits {
	return m.permits
}

// Pending returns the number of queued, unsent items.
func (m *Multiplexer) Pending() int {
	return m.queue.len()
}

// Run opens the stream and drives the send and receive loops until one of them fails or
// ctx ends. Transport errors are returned to the caller, which owns reconnecting.
func (m *Multiplexer) Run(ctx context.Context, handler Handler) error {
	if handler == nil {
		return errors.New("handler is required")
	}
	if !m.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer m.permits.stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	s, err := m.dialer.Dial(gctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			m.logger.Debug("close stream", zap.Error(closeErr))
		}
	}()

	handshake := make([]queueItem, 0, len(m.handshake))
	for _, req := range m.handshake {
		handshake = append(handshake, queueItem{req: req})
	}
	m.queue.pushFront(handshake...)
	m.logger.Info("message stream open",
		zap.Int("handshake", len(handshake)),
		zap.Int64("permits", m.permits.Size()),
	)

	g.Go(func() error {
		return m.sendLoop(gctx, s)
	})
	g.Go(func() error {
		return m.receiveLoop(gctx, s, handler)
	})
	return g.Wait()
}

func (m *Multiplexer) sendLoop(ctx context.Context, s Stream) error {
	for {
		item, err := m.queue.pop(ctx)
		if err != nil {
			return err
		}
		if item.stop {
			m.logger.Info("send side closed", zap.Int("dropped", m.queue.len()))
			if err := s.CloseSend(); err != nil {
				return fmt.Errorf("close send: %w", err)
			}
			return nil
		}

		item.req.ID = m.lastID.Add(1)
		if err := m.permits.Acquire(ctx, item.req.ID); err != nil {
			return err
		}
		m.metrics.SetPermitsInFlight(m.permits.InFlight())

		if err := s.Send(item.req); err != nil {
			return fmt.Errorf("send %s: %w", item.req.Kind, err)
		}
		m.metrics.ObserveSent(item.req.Kind.String())
	}
}

func (m *Multiplexer) receiveLoop(ctx context.Context, s Stream, handler Handler) error {
	for {
		msg, err := s.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrStreamClosed
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("receive: %w", err)
		}

		m.metrics.ObserveReceived(msg.Kind.String())
		handler.Handle(ctx, msg)
		m.metrics.SetPermitsInFlight(m.permits.InFlight())
	}
}
