package stats

import "github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveBlock(accepted bool)
		ObserveSnapshot(snapshot model.Snapshot)
	}
)
