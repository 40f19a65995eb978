package transport

import (
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/reward"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type nodeSummary struct {
	Node      string    `json:"node"`
	UpdatedAt time.Time `json:"updated_at"`
	Progress  uint64    `json:"progress"`
	Network   string    `json:"network,omitempty"`
}

type nodesResponse struct {
	Nodes []nodeSummary `json:"nodes"`
}

type rewardResponse struct {
	Progress         uint64     `json:"progress"`
	CurrentRewardSPR float64    `json:"current_reward_spr"`
	NextRewardSPR    *float64   `json:"next_reward_spr,omitempty"`
	NextThreshold    *uint64    `json:"next_threshold,omitempty"`
	SecondsUntilNext *uint64    `json:"seconds_until_next,omitempty"`
	DaysUntilNext    *float64   `json:"days_until_next,omitempty"`
	NextAt           *time.Time `json:"next_at,omitempty"`
}

func newRewardResponse(info reward.Info, now time.Time) rewardResponse {
	resp := rewardResponse{
		Progress:         info.Progress,
		CurrentRewardSPR: model.SompiToSPR(info.CurrentReward),
	}
	if !info.HasNext {
		return resp
	}
	next := model.SompiToSPR(info.NextReward)
	threshold := info.NextThreshold
	seconds := info.SecondsUntilNext
	days := info.DaysUntilNext()
	resp.NextRewardSPR = &next
	resp.NextThreshold = &threshold
	resp.SecondsUntilNext = &seconds
	resp.DaysUntilNext = &days
	if at, ok := info.NextAt(now); ok {
		resp.NextAt = &at
	}
	return resp
}

type estimateResponse struct {
	Node            string  `json:"node"`
	Hashrate        float64 `json:"hashrate"`
	NetworkHashrate float64 `json:"network_hashrate"`
	BlockRewardSPR  float64 `json:"block_reward_spr"`
	Share           float64 `json:"share"`
	HourSPR         float64 `json:"hour_spr"`
	DaySPR          float64 `json:"day_spr"`
	WeekSPR         float64 `json:"week_spr"`
	MonthSPR        float64 `json:"month_spr"`
	YearSPR         float64 `json:"year_spr"`
}

func newEstimateResponse(node string, hashrate, network float64, blockReward uint64, e reward.Earnings) estimateResponse {
	return estimateResponse{
		Node:            node,
		Hashrate:        hashrate,
		NetworkHashrate: network,
		BlockRewardSPR:  model.SompiToSPR(blockReward),
		Share:           e.Share,
		HourSPR:         model.SompiFloatToSPR(e.Hour),
		DaySPR:          model.SompiFloatToSPR(e.Day),
		WeekSPR:         model.SompiFloatToSPR(e.Week),
		MonthSPR:        model.SompiFloatToSPR(e.Month),
		YearSPR:         model.SompiFloatToSPR(e.Year),
	}
}

type historyPoint struct {
	SampledAt         time.Time `json:"sampled_at"`
	Progress          uint64    `json:"progress"`
	WindowSize        uint32    `json:"window_size"`
	BlocksPerSecond   *float64  `json:"blocks_per_second,omitempty"`
	AverageIntervalMs *float64  `json:"average_interval_ms,omitempty"`
	TxPerSecond       *float64  `json:"tx_per_second,omitempty"`
}

type historyResponse struct {
	Node   string         `json:"node"`
	Points []historyPoint `json:"points"`
}

func newHistoryResponse(node string, rows []model.SnapshotRow) historyResponse {
	resp := historyResponse{Node: node, Points: make([]historyPoint, 0, len(rows))}
	for _, row := range rows {
		p := historyPoint{
			SampledAt:  row.SampledAt,
			Progress:   row.Progress,
			WindowSize: row.WindowSize,
		}
		if row.CadenceDefined {
			rate, avg := row.BlocksPerSecond, row.AverageIntervalMs
			p.BlocksPerSecond = &rate
			p.AverageIntervalMs = &avg
		}
		if row.ThroughputDefined {
			tps := row.TxPerSecond
			p.TxPerSecond = &tps
		}
		resp.Points = append(resp.Points, p)
	}
	return resp
}
