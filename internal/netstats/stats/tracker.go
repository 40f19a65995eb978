package stats

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/goodnatureofminers/spectre-netstats/internal/clock"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/window"
)

// Tracker owns the window and estimators of one node and publishes an immutable Snapshot
// after every change. Observe methods are meant to be called from the single goroutine
// handling inbound messages; Snapshot may be called from anywhere.
type Tracker struct {
	node    string
	window  *window.Window
	cadence Cadence
	clock   clock.Clock
	// elapsed times progress advances for detection cadence.
	elapsed clock.Clock
	metrics Metrics

	mu       sync.Mutex
	progress uint64
	network  *model.NetworkInfo
	supply   *model.CoinSupply

	snapshot atomic.Pointer[model.Snapshot]
}

func NewTracker(node string, w *window.Window, cadence Cadence, clk clock.Clock, metrics Metrics) (*Tracker, error) {
	if node == "" {
		return nil, errors.New("node is required")
	}
	if w == nil {
		return nil, errors.New("window is required")
	}
	if cadence == nil {
		return nil, errors.New("cadence is required")
	}
	if clk == nil {
		return nil, errors.New("clock is required")
	}
	if metrics == nil {
		return nil, errors.New("tracker metrics is required")
	}

	t := &Tracker{
		node:    node,
		window:  w,
		cadence: cadence,
		clock:   clk,
		elapsed: clock.Monotonic,
		metrics: metrics,
	}
	t.snapshot.Store(&model.Snapshot{Node: node, UpdatedAt: clk.Now()})
	return t, nil
}

func (t *Tracker) Node() string {
	return t.node
}

// ObserveBlock inserts rec into the window and recomputes the window statistics. It
// reports false for repeated or stale blocks, which change nothing.
func (t *Tracker) ObserveBlock(rec model.BlockRecord) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	accepted := t.window.Insert(rec)
	t.metrics.ObserveBlock(accepted)
	if !accepted {
		return false
	}

	t.cadence.ObserveWindow(t.window)
	t.publish()
	return true
}

// ObserveProgress records the latest progress counter (virtual DAA score).
func (t *Tracker) ObserveProgress(score uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cadence.ObserveProgress(score, t.elapsed.Now())
	if score > t.progress {
		t.progress = score
	}
	t.publish()
}

func (t *Tracker) ObserveNetworkInfo(info model.NetworkInfo) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.network = &info
	if info.VirtualDaaScore > t.progress {
		t.progress = info.VirtualDaaScore
	}
	t.publish()
}

func (t *Tracker) ObserveSupply(supply model.CoinSupply) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.supply = &supply
	t.publish()
}

// Snapshot returns the latest published stats.
func (t *Tracker) Snapshot() model.Snapshot {
	return *t.snapshot.Load()
}

// publish must be called with mu held.
func (t *Tracker) publish() {
	s := &model.Snapshot{
		Node:       t.node,
		UpdatedAt:  t.clock.Now(),
		Progress:   t.progress,
		WindowSize: t.window.Len(),
		Network:    t.network,
		Supply:     t.supply,
	}
	if c, ok := t.cadence.Stats(); ok {
		s.Cadence = &c
	}
	if tp, ok := Throughput(t.window); ok {
		s.Throughput = &tp
	}

	t.snapshot.Store(s)
	t.metrics.ObserveSnapshot(*s)
}
