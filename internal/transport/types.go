package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/reward"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SnapshotSource interface {
		Node() string
		Snapshot() model.Snapshot
	}
	RewardLookup interface {
		Lookup(progress uint64) reward.Info
	}
	SnapshotHistory interface {
		RecentSnapshots(ctx context.Context, node string, limit uint32) ([]model.SnapshotRow, error)
	}
	Metrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)
