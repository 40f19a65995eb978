package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Output pays Amount sompi to Address.
type Output struct {
	Address string
	Amount  uint64
}

// Transaction keeps only what throughput needs from a block transaction.
type Transaction struct {
	ID      string
	Outputs []Output
}

// BlockRecord is a block-added notification reduced to the fields used by the estimators.
type BlockRecord struct {
	Hash chainhash.Hash
	// Timestamp is the header timestamp in milliseconds.
	Timestamp    int64
	Difficulty   float64
	DaaScore     uint64
	BlueScore    uint64
	Transactions []Transaction
}

// TxCount returns the number of transactions carried by the block.
func (b BlockRecord) TxCount() int {
	return len(b.Transactions)
}

// OutputValue sums every output amount of every transaction in sompi.
func (b BlockRecord) OutputValue() uint64 {
	var total uint64
	for _, tx := range b.Transactions {
		for _, out := range tx.Outputs {
			total += out.Amount
		}
	}
	return total
}

// Time converts the header timestamp to UTC time.
func (b BlockRecord) Time() time.Time {
	return time.UnixMilli(b.Timestamp).UTC()
}
