// Package batcher buffers items and flushes them in rate-limited batches.
package batcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var (
	ErrStopped = errors.New("batcher stopped")
	ErrFull    = errors.New("batcher queue full")
)

// Config controls batch size and pacing.
type Config struct {
	// FlushSize triggers a flush once that many items are buffered.
	FlushSize int
	// FlushInterval flushes whatever is buffered at least this often.
	FlushInterval time.Duration
	// FlushRPS caps flushes per second.
	FlushRPS int
	// QueueSize bounds items waiting for the flush loop. Zero selects twice FlushSize.
	QueueSize int
	// FinalFlushTimeout bounds the flush performed on shutdown.
	FinalFlushTimeout time.Duration
}

func (c Config) validate() error {
	if c.FlushSize <= 0 {
		return fmt.Errorf("flush size must be positive, got %d", c.FlushSize)
	}
	if c.FlushInterval <= 0 {
		return fmt.Errorf("flush interval must be positive, got %s", c.FlushInterval)
	}
	if c.FlushRPS <= 0 {
		return fmt.Errorf("flush rps must be positive, got %d", c.FlushRPS)
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("queue size must not be negative, got %d", c.QueueSize)
	}
	return nil
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flush  func(context.Context, []T) error
	items  chan T
	cfg    Config
	rl     ratelimit.Limiter
	logger *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. flush receives a buffer that is reused after it returns.
func New[T any](cfg Config, flush func(context.Context, []T) error, logger *zap.Logger) (*Batcher[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if flush == nil {
		return nil, errors.New("flush callback is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = cfg.FlushSize * 2
	}
	if cfg.FinalFlushTimeout <= 0 {
		cfg.FinalFlushTimeout = 10 * time.Second
	}

	return &Batcher[T]{
		flush:  flush,
		items:  make(chan T, cfg.QueueSize),
		cfg:    cfg,
		rl:     ratelimit.New(cfg.FlushRPS),
		logger: logger,
		stop:   make(chan struct{}),
	}, nil
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit. It is safe to call twice.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item, waiting for room while ctx allows.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

// TryAdd queues an item without waiting and returns ErrFull when the queue has no room.
func (b *Batcher[T]) TryAdd(item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case b.items <- item:
		return nil
	default:
		return ErrFull
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}
	final := func() {
	drain:
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
			default:
				break drain
			}
		}
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.cfg.FinalFlushTimeout)
		defer cancel()
		flush(fctx)
	}

	for {
		select {
		case <-ctx.Done():
			final()
			return

		case <-b.stop:
			final()
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
