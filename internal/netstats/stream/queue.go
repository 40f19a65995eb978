package stream

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/spectred"
)

type queueItem struct {
	req  spectred.Request
	stop bool
}

// queue is an unbounded FIFO. push never blocks; pop waits for an item or ctx.
type queue struct {
	mu    sync.Mutex
	items []queueItem
	ready chan struct{}
}

func newQueue() *queue {
	return &queue{ready: make(chan struct{}, 1)}
}

func (q *queue) push(items ...queueItem) {
	q.mu.Lock()
	q.items = append(q.items, items...)
	q.mu.Unlock()
	q.signal()
}

// pushFront places items ahead of everything already queued, preserving their order.
func (q *queue) pushFront(items ...queueItem) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	q.items = append(append(make([]queueItem, 0, len(items)+len(q.items)), items...), q.items...)
	q.mu.Unlock()
	q.signal()
}

func (q *queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *queue) pop(ctx context.Context) (queueItem, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			item := q.items[0]
			q.items[0] = queueItem{}
			q.items = q.items[1:]
			q.mu.Unlock()
			return item, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return queueItem{}, ctx.Err()
		case <-q.ready:
		}
	}
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
