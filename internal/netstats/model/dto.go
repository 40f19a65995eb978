package model

import "time"

// SnapshotDocument is the JSON form of a Snapshot shared by the HTTP API and the snapshot store.
type SnapshotDocument struct {
	Node       string              `json:"node"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Progress   uint64              `json:"progress"`
	WindowSize int                 `json:"window_size"`
	Cadence    *CadenceDocument    `json:"cadence,omitempty"`
	Throughput *ThroughputDocument `json:"throughput,omitempty"`
	Network    *NetworkDocument    `json:"network,omitempty"`
	Supply     *SupplyDocument     `json:"supply,omitempty"`
}

type CadenceDocument struct {
	LatestIntervalMs  float64 `json:"latest_interval_ms"`
	AverageIntervalMs float64 `json:"average_interval_ms"`
	BlocksPerSecond   float64 `json:"blocks_per_second"`
}

type ThroughputDocument struct {
	AvgTxPerBlock       float64 `json:"avg_tx_per_block"`
	AvgValuePerBlockSPR float64 `json:"avg_value_per_block_spr"`
	TxPerSecond         float64 `json:"tx_per_second"`
	ValuePerSecondSPR   float64 `json:"value_per_second_spr"`
}

type NetworkDocument struct {
	Name              string  `json:"name"`
	BlockCount        uint64  `json:"block_count"`
	HeaderCount       uint64  `json:"header_count"`
	Difficulty        float64 `json:"difficulty"`
	VirtualDaaScore   uint64  `json:"virtual_daa_score"`
	EstimatedHashrate float64 `json:"estimated_hashrate"`
}

type SupplyDocument struct {
	CirculatingSPR float64 `json:"circulating_spr"`
	MaxSPR         float64 `json:"max_spr"`
}

// Document converts the snapshot into its display form.
func (s Snapshot) Document() SnapshotDocument {
	doc := SnapshotDocument{
		Node:       s.Node,
		UpdatedAt:  s.UpdatedAt,
		Progress:   s.Progress,
		WindowSize: s.WindowSize,
	}
	if c := s.Cadence; c != nil {
		doc.Cadence = &CadenceDocument{
			LatestIntervalMs:  durationMs(c.LatestInterval),
			AverageIntervalMs: durationMs(c.AverageInterval),
			BlocksPerSecond:   c.Rate,
		}
	}
	if t := s.Throughput; t != nil {
		doc.Throughput = &ThroughputDocument{
			AvgTxPerBlock:       t.AvgTxPerBlock,
			AvgValuePerBlockSPR: SompiFloatToSPR(t.AvgValuePerBlock),
			TxPerSecond:         t.TxPerSecond,
			ValuePerSecondSPR:   SompiFloatToSPR(t.ValuePerSecond),
		}
	}
	if n := s.Network; n != nil {
		doc.Network = &NetworkDocument{
			Name:              n.NetworkName,
			BlockCount:        n.BlockCount,
			HeaderCount:       n.HeaderCount,
			Difficulty:        n.Difficulty,
			VirtualDaaScore:   n.VirtualDaaScore,
			EstimatedHashrate: n.EstimatedHashrate(),
		}
	}
	if sp := s.Supply; sp != nil {
		doc.Supply = &SupplyDocument{
			CirculatingSPR: SompiToSPR(sp.CirculatingSompi),
			MaxSPR:         SompiToSPR(sp.MaxSompi),
		}
	}
	return doc
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
