package reward

import (
	"errors"
	"time"
)

// Earnings is the expected mined amount in sompi over common periods.
type Earnings struct {
	Share float64
	Hour  float64
	Day   float64
	Week  float64
	Month float64
	Year  float64
}

const year = 365.25 * 24 * time.Hour

// Estimate projects the earnings of a miner producing hashrate against networkHashrate,
// both in H/s, when the network mints rewardPerSecond sompi every second.
func Estimate(rewardPerSecond uint64, hashrate, networkHashrate float64) (Earnings, error) {
	if hashrate <= 0 {
		return Earnings{}, errors.New("hashrate must be positive")
	}
	if networkHashrate <= 0 {
		return Earnings{}, errors.New("network hashrate is unknown")
	}

	share := hashrate / networkHashrate
	per := func(d time.Duration) float64 {
		return float64(rewardPerSecond) * d.Seconds() * share
	}
	return Earnings{
		Share: share,
		Hour:  per(time.Hour),
		Day:   per(24 * time.Hour),
		Week:  per(7 * 24 * time.Hour),
		Month: per(year / 12),
		Year:  per(year),
	}, nil
}
