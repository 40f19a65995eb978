package service

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"github.com/goodnatureofminers/spectre-netstats/pkg/batcher"
	"go.uber.org/zap"
)

// BlockHistory batches accepted blocks into the history repository. RecordBlock never
// blocks the receive loop: rows that do not fit the queue are dropped and logged.
type BlockHistory struct {
	source  SnapshotSource
	repo    BlockHistoryRepository
	logger  *zap.Logger
	batcher *batcher.Batcher[model.BlockRow]
}

func NewBlockHistory(source SnapshotSource, repo BlockHistoryRepository, logger *zap.Logger) (*BlockHistory, error) {
	if source == nil {
		return nil, errors.New("snapshot source is required")
	}
	if repo == nil {
		return nil, errors.New("block history repository is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	h := &BlockHistory{
		source: source,
		repo:   repo,
		logger: logger.With(zap.String("node", source.Node())),
	}
	b, err := batcher.New[model.BlockRow](batcher.Config{
		FlushSize:     blockBatcherFlushSize,
		FlushInterval: blockBatcherFlushInterval,
		FlushRPS:      blockBatcherFlushRPS,
		QueueSize:     blockBatcherQueueSize,
	}, h.flush, h.logger.Named("blockBatcher"))
	if err != nil {
		return nil, err
	}
	h.batcher = b
	return h, nil
}

func (h *BlockHistory) Start(ctx context.Context) {
	h.batcher.Start(ctx)
}

// Stop flushes buffered rows.
func (h *BlockHistory) Stop() {
	h.batcher.Stop()
}

func (h *BlockHistory) RecordBlock(rec model.BlockRecord) {
	if err := h.batcher.TryAdd(rec.Row(h.source.Node(), h.network())); err != nil {
		h.logger.Warn("block row dropped", zap.Stringer("hash", rec.Hash), zap.Error(err))
	}
}

func (h *BlockHistory) network() string {
	if info := h.source.Snapshot().Network; info != nil {
		return info.NetworkName
	}
	return ""
}

func (h *BlockHistory) flush(ctx context.Context, rows []model.BlockRow) error {
	return h.repo.InsertBlocks(ctx, rows)
}
