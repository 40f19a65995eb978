package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/dispatch"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SnapshotSource interface {
		Node() string
		Snapshot() model.Snapshot
	}
	// Tracker is the per-node stats owner that survives reconnects.
	Tracker interface {
		dispatch.Tracker
		SnapshotSource
	}
	SnapshotStore interface {
		SaveSnapshot(ctx context.Context, snapshot model.Snapshot) error
	}
	SnapshotHistory interface {
		InsertSnapshots(ctx context.Context, snapshots []model.SnapshotRow) error
	}
	BlockHistoryRepository interface {
		InsertBlocks(ctx context.Context, blocks []model.BlockRow) error
	}
	CollectorMetrics interface {
		ObserveSession(err error, started time.Time)
		ObservePublish(target string, err error, started time.Time)
	}
)
