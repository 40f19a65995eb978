package model

import (
	"time"

	"github.com/goodnatureofminers/spectre-netstats/pkg/safe"
)

// BlockRow is a block as stored in the history tables.
type BlockRow struct {
	Node        string
	Network     string
	Hash        string
	Timestamp   time.Time
	DaaScore    uint64
	BlueScore   uint64
	Difficulty  float64
	TxCount     uint32
	OutputValue uint64
}

// SnapshotRow is a periodic stats sample as stored in the history tables.
type SnapshotRow struct {
	Node              string
	Network           string
	SampledAt         time.Time
	Progress          uint64
	WindowSize        uint32
	CadenceDefined    bool
	LatestIntervalMs  float64
	AverageIntervalMs float64
	BlocksPerSecond   float64
	ThroughputDefined bool
	AvgTxPerBlock     float64
	AvgValuePerBlock  float64
	TxPerSecond       float64
	ValuePerSecond    float64
}

// Row projects the snapshot onto a history row.
func (s Snapshot) Row(sampledAt time.Time) SnapshotRow {
	row := SnapshotRow{
		Node:      s.Node,
		SampledAt: sampledAt,
		Progress:  s.Progress,
	}
	if size, err := safe.Uint32(s.WindowSize); err == nil {
		row.WindowSize = size
	}
	if s.Network != nil {
		row.Network = s.Network.NetworkName
	}
	if c := s.Cadence; c != nil {
		row.CadenceDefined = true
		row.LatestIntervalMs = durationMs(c.LatestInterval)
		row.AverageIntervalMs = durationMs(c.AverageInterval)
		row.BlocksPerSecond = c.Rate
	}
	if t := s.Throughput; t != nil {
		row.ThroughputDefined = true
		row.AvgTxPerBlock = t.AvgTxPerBlock
		row.AvgValuePerBlock = t.AvgValuePerBlock
		row.TxPerSecond = t.TxPerSecond
		row.ValuePerSecond = t.ValuePerSecond
	}
	return row
}

// BlockRow projects a block record onto a history row.
func (b BlockRecord) Row(node, network string) BlockRow {
	row := BlockRow{
		Node:        node,
		Network:     network,
		Hash:        b.Hash.String(),
		Timestamp:   b.Time(),
		DaaScore:    b.DaaScore,
		BlueScore:   b.BlueScore,
		Difficulty:  b.Difficulty,
		OutputValue: b.OutputValue(),
	}
	if count, err := safe.Uint32(b.TxCount()); err == nil {
		row.TxCount = count
	}
	return row
}
