package stats

import (
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/window"
)

// Throughput averages transaction count and output value over a full window. Per-second
// rates divide the blocks produced after the oldest one by the window's time span and
// are zero when the span is zero.
func Throughput(w *window.Window) (model.ThroughputStats, bool) {
	if !w.Full() {
		return model.ThroughputStats{}, false
	}

	records := w.Records()
	var (
		txs, value             uint64
		oldestTxs, oldestValue uint64
	)
	for i, rec := range records {
		count, sum := uint64(rec.TxCount()), rec.OutputValue()
		txs += count
		value += sum
		if i == len(records)-1 {
			oldestTxs, oldestValue = count, sum
		}
	}

	n := float64(len(records))
	stats := model.ThroughputStats{
		AvgTxPerBlock:    float64(txs) / n,
		AvgValuePerBlock: float64(value) / n,
	}

	spanMs := records[0].Timestamp - records[len(records)-1].Timestamp
	if spanMs > 0 {
		seconds := float64(spanMs) / 1000
		stats.TxPerSecond = float64(txs-oldestTxs) / seconds
		stats.ValuePerSecond = float64(value-oldestValue) / seconds
	}
	return stats, true
}
