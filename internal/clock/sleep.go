// Package clock wraps wall-clock access so time-dependent code can be driven by tests.
package clock

import (
	"context"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time {
	return f()
}

// Real is the system clock in UTC. Converting to UTC drops the monotonic reading, so
// differences between Real readings follow wall-clock steps.
var Real Clock = Func(func() time.Time { return time.Now().UTC() })

// Monotonic keeps the monotonic reading and is used to measure elapsed time.
var Monotonic Clock = Func(time.Now)

// SleepWithContext waits for d or returns the context error if ctx ends first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
