// Package stats derives cadence and throughput telemetry from the block window.
package stats

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/window"
)

// Strategy selects how block intervals are measured.
type Strategy string

const (
	// StrategyAuthoritative measures intervals between header timestamps in the window.
	StrategyAuthoritative Strategy = "authoritative"
	// StrategyDetection measures wall-clock time between progress counter advances.
	StrategyDetection Strategy = "detection"
)

// DefaultDetectionHistory bounds the intervals kept by DetectionCadence.
const DefaultDetectionHistory = 300

// Cadence estimates block spacing. Implementations react to one of the two inputs and
// ignore the other.
type Cadence interface {
	// ObserveWindow is called after every accepted window insert.
	ObserveWindow(w *window.Window)
	// ObserveProgress is called when the progress counter is reported at wall time at.
	ObserveProgress(score uint64, at time.Time)
	// Stats returns the current estimate, ok is false until enough samples exist.
	Stats() (model.CadenceStats, bool)
	Strategy() Strategy
}

// NewCadence builds the estimator for strategy.
func NewCadence(strategy Strategy) (Cadence, error) {
	switch strategy {
	case StrategyAuthoritative, "":
		return &AuthoritativeCadence{}, nil
	case StrategyDetection:
		return NewDetectionCadence(DefaultDetectionHistory), nil
	default:
		return nil, fmt.Errorf("unknown cadence strategy %q", strategy)
	}
}

// AuthoritativeCadence recomputes intervals from the full window once it is at capacity.
type AuthoritativeCadence struct {
	stats   model.CadenceStats
	defined bool
}

func (c *AuthoritativeCadence) ObserveWindow(w *window.Window) {
	if !w.Full() {
		c.stats, c.defined = model.CadenceStats{}, false
		return
	}

	stamps := w.Timestamps()
	deltas := make([]time.Duration, 0, len(stamps)-1)
	for i := 0; i+1 < len(stamps); i++ {
		deltas = append(deltas, time.Duration(stamps[i]-stamps[i+1])*time.Millisecond)
	}
	c.stats, c.defined = fromIntervals(deltas[0], deltas), true
}

func (c *AuthoritativeCadence) ObserveProgress(uint64, time.Time) {}

func (c *AuthoritativeCadence) Stats() (model.CadenceStats, bool) {
	return c.stats, c.defined
}

func (c *AuthoritativeCadence) Strategy() Strategy {
	return StrategyAuthoritative
}

// DetectionCadence measures the local wall-clock time between progress counter advances.
// Repeated or decreasing counters are ignored.
type DetectionCadence struct {
	history   int
	lastScore uint64
	lastSeen  time.Time
	seen      bool
	intervals []time.Duration
}

func NewDetectionCadence(history int) *DetectionCadence {
	if history < 2 {
		history = DefaultDetectionHistory
	}
	return &DetectionCadence{history: history}
}

func (c *DetectionCadence) ObserveWindow(*window.Window) {}

func (c *DetectionCadence) ObserveProgress(score uint64, at time.Time) {
	if c.seen && score <= c.lastScore {
		return
	}
	if c.seen {
		c.intervals = append(c.intervals, at.Sub(c.lastSeen))
		if over := len(c.intervals) - c.history; over > 0 {
			c.intervals = append(c.intervals[:0], c.intervals[over:]...)
		}
	}
	c.lastScore, c.lastSeen, c.seen = score, at, true
}

func (c *DetectionCadence) Stats() (model.CadenceStats, bool) {
	if len(c.intervals) < 2 {
		return model.CadenceStats{}, false
	}
	return fromIntervals(c.intervals[len(c.intervals)-1], c.intervals), true
}

func (c *DetectionCadence) Strategy() Strategy {
	return StrategyDetection
}

func fromIntervals(latest time.Duration, intervals []time.Duration) model.CadenceStats {
	var total time.Duration
	for _, d := range intervals {
		total += d
	}
	avg := total / time.Duration(len(intervals))

	stats := model.CadenceStats{LatestInterval: latest, AverageInterval: avg}
	if avg > 0 {
		stats.Rate = 1 / avg.Seconds()
	}
	return stats
}
