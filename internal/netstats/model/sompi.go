package model

import "github.com/btcsuite/btcd/btcutil"

// SompiToSPR converts an integer sompi amount to SPR. Sompi use the same 1e8 base-unit
// scale as satoshis.
func SompiToSPR(v uint64) float64 {
	return btcutil.Amount(v).ToBTC()
}

// SompiFloatToSPR converts an averaged sompi amount to SPR.
func SompiFloatToSPR(v float64) float64 {
	return v / btcutil.SatoshiPerBitcoin
}
