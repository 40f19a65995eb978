package reward

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// DeflationaryParams describes a schedule that decays by half every twelve periods.
type DeflationaryParams struct {
	// Start is the progress value of the first breakpoint.
	Start uint64
	// Initial is the reward in sompi at Start.
	Initial uint64
	// Interval is the progress distance between breakpoints.
	Interval uint64
	Count    int
}

// DefaultDeflationaryParams follows monthly reductions at one progress unit per second.
var DefaultDeflationaryParams = DeflationaryParams{
	Start:    15_519_600,
	Initial:  44_000_000_000,
	Interval: 2_629_800,
	Count:    426,
}

// Deflationary generates breakpoints whose reward shrinks by a factor of 2^(-1/12) per
// interval, rounded down to whole sompi. Generation stops early once the reward reaches zero.
func Deflationary(p DeflationaryParams) (*Schedule, error) {
	if p.Initial == 0 || p.Interval == 0 || p.Count <= 0 {
		return nil, fmt.Errorf("invalid deflationary params %+v", p)
	}

	breakpoints := make([]Breakpoint, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		offset := uint64(i) * p.Interval
		if offset/p.Interval != uint64(i) || p.Start > math.MaxUint64-offset {
			return nil, fmt.Errorf("breakpoint %d overflows progress range", i)
		}
		reward := uint64(math.Floor(float64(p.Initial) * math.Pow(2, -float64(i)/12)))
		breakpoints = append(breakpoints, Breakpoint{Threshold: p.Start + offset, Reward: reward})
		if reward == 0 {
			break
		}
	}
	return NewSchedule(breakpoints)
}

// LoadFile reads a JSON array of breakpoints.
func LoadFile(path string) (*Schedule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reward table: %w", err)
	}
	var breakpoints []Breakpoint
	if err := json.Unmarshal(raw, &breakpoints); err != nil {
		return nil, fmt.Errorf("decode reward table %s: %w", path, err)
	}
	return NewSchedule(breakpoints)
}
