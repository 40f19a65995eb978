package spectred

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
)

// Record converts the block into the estimator input, rejecting blocks without identity or time.
func (b Block) Record() (model.BlockRecord, error) {
	if !b.hasHeader {
		return model.BlockRecord{}, fmt.Errorf("%w: header missing", model.ErrMalformedBlock)
	}
	if b.Timestamp <= 0 {
		return model.BlockRecord{}, fmt.Errorf("%w: timestamp missing", model.ErrMalformedBlock)
	}
	if b.Hash == "" {
		return model.BlockRecord{}, fmt.Errorf("%w: hash missing", model.ErrMalformedBlock)
	}
	hash, err := chainhash.NewHashFromStr(b.Hash)
	if err != nil {
		return model.BlockRecord{}, fmt.Errorf("%w: hash %q: %v", model.ErrMalformedBlock, b.Hash, err)
	}

	txs := make([]model.Transaction, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		outputs := make([]model.Output, 0, len(tx.Outputs))
		for _, out := range tx.Outputs {
			outputs = append(outputs, model.Output{Address: out.Address, Amount: out.Amount})
		}
		txs = append(txs, model.Transaction{ID: tx.ID, Outputs: outputs})
	}

	return model.BlockRecord{
		Hash:         *hash,
		Timestamp:    b.Timestamp,
		Difficulty:   b.Difficulty,
		DaaScore:     b.DaaScore,
		BlueScore:    b.BlueScore,
		Transactions: txs,
	}, nil
}

// NetworkInfo converts the DAG info body.
func (i DagInfo) NetworkInfo() model.NetworkInfo {
	return model.NetworkInfo{
		NetworkName:     i.NetworkName,
		BlockCount:      i.BlockCount,
		HeaderCount:     i.HeaderCount,
		Difficulty:      i.Difficulty,
		VirtualDaaScore: i.VirtualDaaScore,
	}
}

// Supply converts the coin supply body.
func (s CoinSupply) Supply() model.CoinSupply {
	return model.CoinSupply{
		CirculatingSompi: s.CirculatingSompi,
		MaxSompi:         s.MaxSompi,
	}
}
