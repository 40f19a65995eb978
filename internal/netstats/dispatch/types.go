package dispatch

import (
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/spectred"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Permits is released once for every response, by the envelope ID it echoes.
	Permits interface {
		Release(id uint64) bool
	}
	// Requester accepts follow-up requests without blocking.
	Requester interface {
		Enqueue(req spectred.Request)
	}
	Tracker interface {
		ObserveBlock(rec model.BlockRecord) bool
		ObserveProgress(score uint64)
		ObserveNetworkInfo(info model.NetworkInfo)
		ObserveSupply(supply model.CoinSupply)
	}
	// BlockRecorder receives every block accepted into the window.
	BlockRecorder interface {
		RecordBlock(rec model.BlockRecord)
	}
	Metrics interface {
		ObserveMessage(kind string, outcome string, started time.Time)
	}
)
