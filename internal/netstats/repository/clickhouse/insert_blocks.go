package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
)

const insertBlocksQuery = `
INSERT INTO netstats_blocks (
	node,
	network,
	hash,
	timestamp,
	daa_score,
	blue_score,
	difficulty,
	tx_count,
	output_value
) VALUES`

// InsertBlocks stores block rows. Repeated hashes collapse on merge.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.BlockRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(blocks))
	for _, b := range blocks {
		rows = append(rows, []any{
			b.Node,
			b.Network,
			b.Hash,
			b.Timestamp,
			b.DaaScore,
			b.BlueScore,
			b.Difficulty,
			b.TxCount,
			b.OutputValue,
		})
	}

	if err = r.writer.WriteBatch(ctx, insertBlocksQuery, rows); err != nil {
		err = fmt.Errorf("insert blocks: %w", err)
		return err
	}
	return nil
}
