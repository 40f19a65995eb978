package stream

import (
	"context"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

type ticket struct {
	id    uint64
	timer *time.Timer
}

// Permits bounds the number of requests in flight. Every permit is tied to the envelope
// ID of the request it admitted, so a response retires exactly the ticket of the request
// it answers.
type Permits struct {
	sem     *semaphore.Weighted
	size    int64
	timeout time.Duration
	onLeak  func()

	mu      sync.Mutex
	tickets []*ticket
}

// NewPermits creates a pool of size permits. A positive timeout reclaims a permit whose
// response never arrives and reports it through onLeak; zero keeps permits until answered.
func NewPermits(size int64, timeout time.Duration, onLeak func()) *Permits {
	return &Permits{
		sem:     semaphore.NewWeighted(size),
		size:    size,
		timeout: timeout,
		onLeak:  onLeak,
	}
}

// Acquire blocks until a permit is free or ctx ends, then holds it for request id.
func (p *Permits) Acquire(ctx context.Context, id uint64) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	t := &ticket{id: id}
	p.mu.Lock()
	p.tickets = append(p.tickets, t)
	if p.timeout > 0 {
		t.timer = time.AfterFunc(p.timeout, func() { p.expire(t) })
	}
	p.mu.Unlock()
	return nil
}

// Release returns the permit held for request id. A zero id comes from a node that does
// not echo envelope IDs and retires the oldest ticket. It reports false, and changes
// nothing, when no matching permit is outstanding, which includes a late response to a
// request whose permit was already reclaimed.
func (p *Permits) Release(id uint64) bool {
	p.mu.Lock()
	idx := -1
	if id == 0 {
		if len(p.tickets) > 0 {
			idx = 0
		}
	} else {
		idx = slices.IndexFunc(p.tickets, func(t *ticket) bool { return t.id == id })
	}
	if idx < 0 {
		p.mu.Unlock()
		return false
	}
	t := p.tickets[idx]
	p.tickets = slices.Delete(p.tickets, idx, idx+1)
	p.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	p.sem.Release(1)
	return true
}

func (p *Permits) expire(t *ticket) {
	p.mu.Lock()
	idx := slices.Index(p.tickets, t)
	if idx < 0 {
		p.mu.Unlock()
		return
	}
	p.tickets = slices.Delete(p.tickets, idx, idx+1)
	p.mu.Unlock()

	if p.onLeak != nil {
		p.onLeak()
	}
	p.sem.Release(1)
}

// InFlight returns the number of permits currently held.
func (p *Permits) InFlight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tickets)
}

// Size returns the pool capacity.
func (p *Permits) Size() int64 {
	return p.size
}

// stop cancels pending reclaim timers once the session is over.
func (p *Permits) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, t := range p.tickets {
		if t.timer != nil {
			t.timer.Stop()
		}
	}
}
