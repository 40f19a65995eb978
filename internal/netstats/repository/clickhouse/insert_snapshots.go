package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
)

const insertSnapshotsQuery = `
INSERT INTO netstats_snapshots (
	node,
	network,
	sampled_at,
	progress,
	window_size,
	cadence_defined,
	latest_interval_ms,
	average_interval_ms,
	blocks_per_second,
	throughput_defined,
	avg_tx_per_block,
	avg_value_per_block,
	tx_per_second,
	value_per_second
) VALUES`

// InsertSnapshots stores periodic stats samples.
func (r *Repository) InsertSnapshots(ctx context.Context, snapshots []model.SnapshotRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_snapshots", err, start)
	}()

	if len(snapshots) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(snapshots))
	for _, s := range snapshots {
		rows = append(rows, []any{
			s.Node,
			s.Network,
			s.SampledAt,
			s.Progress,
			s.WindowSize,
			s.CadenceDefined,
			s.LatestIntervalMs,
			s.AverageIntervalMs,
			s.BlocksPerSecond,
			s.ThroughputDefined,
			s.AvgTxPerBlock,
			s.AvgValuePerBlock,
			s.TxPerSecond,
			s.ValuePerSecond,
		})
	}

	if err = r.writer.WriteBatch(ctx, insertSnapshotsQuery, rows); err != nil {
		err = fmt.Errorf("insert snapshots: %w", err)
		return err
	}
	return nil
}
