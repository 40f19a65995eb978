// Package window keeps the most recent blocks ordered newest first.
package window

import (
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
)

const (
	DefaultCapacity = 30
	MinCapacity     = 2
)

// Window is a fixed-capacity set of blocks sorted by timestamp, newest first, with at most
// one entry per block hash. It is not safe for concurrent use; the owner serializes access.
type Window struct {
	capacity int
	blocks   []model.BlockRecord
	hashes   map[chainhash.Hash]struct{}
}

func New(capacity int) (*Window, error) {
	if capacity < MinCapacity {
		return nil, fmt.Errorf("window capacity must be at least %d, got %d", MinCapacity, capacity)
	}
	return &Window{
		capacity: capacity,
		blocks:   make([]model.BlockRecord, 0, capacity+1),
		hashes:   make(map[chainhash.Hash]struct{}, capacity+1),
	}, nil
}

// Insert places rec by timestamp and evicts the oldest block once capacity is exceeded.
// It reports whether rec is retained: repeated hashes and blocks older than a full window
// are rejected and leave the window untouched.
func (w *Window) Insert(rec model.BlockRecord) bool {
	if _, ok := w.hashes[rec.Hash]; ok {
		return false
	}

	// first position holding a strictly older block; equal timestamps keep arrival order
	idx := sort.Search(len(w.blocks), func(i int) bool {
		return w.blocks[i].Timestamp < rec.Timestamp
	})
	if idx >= w.capacity {
		return false
	}

	w.blocks = append(w.blocks, model.BlockRecord{})
	copy(w.blocks[idx+1:], w.blocks[idx:])
	w.blocks[idx] = rec
	w.hashes[rec.Hash] = struct{}{}

	for len(w.blocks) > w.capacity {
		last := len(w.blocks) - 1
		delete(w.hashes, w.blocks[last].Hash)
		w.blocks[last] = model.BlockRecord{}
		w.blocks = w.blocks[:last]
	}
	return true
}

// Contains reports whether a block with hash is currently retained.
func (w *Window) Contains(hash chainhash.Hash) bool {
	_, ok := w.hashes[hash]
	return ok
}

func (w *Window) Len() int {
	return len(w.blocks)
}

func (w *Window) Capacity() int {
	return w.capacity
}

// Full reports whether the window holds capacity blocks.
func (w *Window) Full() bool {
	return len(w.blocks) == w.capacity
}

// Records returns a copy of the retained blocks, newest first.
func (w *Window) Records() []model.BlockRecord {
	out := make([]model.BlockRecord, len(w.blocks))
	copy(out, w.blocks)
	return out
}

// Timestamps returns the retained timestamps in milliseconds, newest first.
func (w *Window) Timestamps() []int64 {
	out := make([]int64, len(w.blocks))
	for i, b := range w.blocks {
		out[i] = b.Timestamp
	}
	return out
}

// Newest returns the most recent block.
func (w *Window) Newest() (model.BlockRecord, bool) {
	if len(w.blocks) == 0 {
		return model.BlockRecord{}, false
	}
	return w.blocks[0], true
}
