package model

import "time"

// CadenceStats describes the spacing between consecutive blocks.
type CadenceStats struct {
	LatestInterval  time.Duration
	AverageInterval time.Duration
	// Rate is blocks per second, zero when AverageInterval is zero.
	Rate float64
}

// ThroughputStats averages transaction count and transferred value over the block window.
type ThroughputStats struct {
	AvgTxPerBlock float64
	// AvgValuePerBlock is expressed in sompi.
	AvgValuePerBlock float64
	TxPerSecond      float64
	ValuePerSecond   float64
}

// NetworkInfo is the latest DAG info reported by the node.
type NetworkInfo struct {
	NetworkName     string
	BlockCount      uint64
	HeaderCount     uint64
	Difficulty      float64
	VirtualDaaScore uint64
}

// EstimatedHashrate returns the network hashrate in hashes per second derived from difficulty.
func (i NetworkInfo) EstimatedHashrate() float64 {
	return i.Difficulty * 2
}

// CoinSupply is the latest supply reported by the node, in sompi.
type CoinSupply struct {
	CirculatingSompi uint64
	MaxSompi         uint64
}

// Snapshot is an immutable view of one node's computed stats. Nil pointers mean the stat
// is not defined yet.
type Snapshot struct {
	Node       string
	UpdatedAt  time.Time
	Progress   uint64
	WindowSize int
	Cadence    *CadenceStats
	Throughput *ThroughputStats
	Network    *NetworkInfo
	Supply     *CoinSupply
}
