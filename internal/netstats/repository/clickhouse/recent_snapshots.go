package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
)

// RecentSnapshots returns up to limit samples of node, newest first.
func (r *Repository) RecentSnapshots(ctx context.Context, node string, limit uint32) (result []model.SnapshotRow, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("recent_snapshots", err, start)
	}()

	if limit == 0 {
		return nil, nil
	}

	const query = `
SELECT
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
FROM netstats_snapshots
WHERE node = ?
ORDER BY sampled_at DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, node, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent snapshots: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close recent snapshots rows: %w", closeErr)
		}
	}()

	result = make([]model.SnapshotRow, 0, limit)
	for rows.Next() {
		var s model.SnapshotRow
		if err = rows.Scan(
			&s.Node,
			&s.Network,
			&s.SampledAt,
			&s.Progress,
			&s.WindowSize,
			&s.CadenceDefined,
			&s.LatestIntervalMs,
			&s.AverageIntervalMs,
			&s.BlocksPerSecond,
			&s.ThroughputDefined,
			&s.AvgTxPerBlock,
			&s.AvgValuePerBlock,
			&s.TxPerSecond,
			&s.ValuePerSecond,
		); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		result = append(result, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot rows: %w", err)
	}
	return result, nil
}
