// Package reward looks up the deflationary block reward for a progress counter value.
package reward

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/pkg/safe"
)

// Breakpoint switches the block reward to Reward sompi once progress reaches Threshold.
type Breakpoint struct {
	Threshold uint64 `json:"threshold"`
	Reward    uint64 `json:"reward"`
}

// Schedule is an immutable table of breakpoints sorted by threshold.
type Schedule struct {
	breakpoints []Breakpoint
}

// Info is the reward state at one progress value. Rewards are in sompi.
type Info struct {
	Progress      uint64
	CurrentReward uint64
	NextReward    uint64
	NextThreshold uint64
	HasNext       bool
	// SecondsUntilNext assumes the progress counter advances once per second.
	SecondsUntilNext uint64
}

// NewSchedule copies breakpoints, which must have strictly increasing thresholds.
func NewSchedule(breakpoints []Breakpoint) (*Schedule, error) {
	if len(breakpoints) == 0 {
		return nil, errors.New("reward schedule is empty")
	}
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i].Threshold <= breakpoints[i-1].Threshold {
			return nil, fmt.Errorf("breakpoint %d: threshold %d does not exceed %d",
				i, breakpoints[i].Threshold, breakpoints[i-1].Threshold)
		}
	}
	return &Schedule{breakpoints: append([]Breakpoint(nil), breakpoints...)}, nil
}

// Lookup scans the table in threshold order. The current reward is the reward of the
// last breakpoint reached and stays zero below the first one; the next reward is the
// first breakpoint above progress.
func (s *Schedule) Lookup(progress uint64) Info {
	info := Info{Progress: progress}
	for _, bp := range s.breakpoints {
		if bp.Threshold > progress {
			info.NextReward = bp.Reward
			info.NextThreshold = bp.Threshold
			info.HasNext = true
			info.SecondsUntilNext = bp.Threshold - progress
			break
		}
		info.CurrentReward = bp.Reward
	}
	return info
}

// Breakpoints returns a copy of the table.
func (s *Schedule) Breakpoints() []Breakpoint {
	return append([]Breakpoint(nil), s.breakpoints...)
}

// NextAt returns the wall-clock time of the next reduction relative to now.
func (i Info) NextAt(now time.Time) (time.Time, bool) {
	if !i.HasNext {
		return time.Time{}, false
	}
	secs, err := safe.Int64(i.SecondsUntilNext)
	if err != nil || secs > math.MaxInt64/int64(time.Second) {
		return time.Time{}, false
	}
	return now.Add(time.Duration(secs) * time.Second), true
}

// DaysUntilNext converts SecondsUntilNext to days.
func (i Info) DaysUntilNext() float64 {
	return float64(i.SecondsUntilNext) / 86400
}
