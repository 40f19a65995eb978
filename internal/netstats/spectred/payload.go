package spectred

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// RPCError is the error body a node attaches to a failed response.
type RPCError struct {
	Message string
}

func (e *RPCError) Error() string {
	return "node rpc error: " + e.Message
}

// Block is the subset of an RpcBlock carried by a block-added notification.
type Block struct {
	Hash         string
	Difficulty   float64
	Timestamp    int64
	Bits         uint32
	DaaScore     uint64
	BlueScore    uint64
	Transactions []Transaction

	hasHeader bool
}

type Transaction struct {
	ID      string
	Outputs []Output
}

type Output struct {
	Amount  uint64
	Address string
}

// DagInfo is the body of a getBlockDagInfo response.
type DagInfo struct {
	NetworkName     string
	BlockCount      uint64
	HeaderCount     uint64
	Difficulty      float64
	VirtualDaaScore uint64
}

// CoinSupply is the body of a getCoinSupply response.
type CoinSupply struct {
	MaxSompi         uint64
	CirculatingSompi uint64
}

// ResponseError returns the RPC error attached to a response payload, or nil.
func (m Message) ResponseError() error {
	var rpcErr *RPCError
	err := walkFields(m.Payload, func(f field) error {
		if f.num != fieldRPCError || f.typ != protowire.BytesType {
			return nil
		}
		var decodeErr error
		rpcErr, decodeErr = decodeRPCError(f.bytes)
		return decodeErr
	})
	if err != nil {
		return fmt.Errorf("decode %s: %w", m.Kind, err)
	}
	if rpcErr != nil {
		return rpcErr
	}
	return nil
}

// BlockAdded decodes a block-added notification.
func (m Message) BlockAdded() (Block, error) {
	if m.Kind != KindBlockAddedNotification {
		return Block{}, fmt.Errorf("cannot decode block from %s", m.Kind)
	}

	var (
		blk   Block
		found bool
	)
	err := walkFields(m.Payload, func(f field) error {
		if f.num != fieldBlockAddedBlock || f.typ != protowire.BytesType {
			return nil
		}
		found = true
		return blk.unmarshal(f.bytes)
	})
	if err != nil {
		return Block{}, fmt.Errorf("decode block: %w", err)
	}
	if !found {
		return Block{}, errors.New("notification carries no block")
	}
	return blk, nil
}

// VirtualDaaScore decodes a virtual-DAA-score-changed notification.
func (m Message) VirtualDaaScore() (uint64, error) {
	if m.Kind != KindVirtualDaaScoreChangedNotification {
		return 0, fmt.Errorf("cannot decode daa score from %s", m.Kind)
	}

	var score uint64
	err := walkFields(m.Payload, func(f field) error {
		if f.num == fieldDaaScoreChangedScore && f.typ == protowire.VarintType {
			score = f.value
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("decode daa score: %w", err)
	}
	return score, nil
}

// DagInfo decodes a getBlockDagInfo response.
func (m Message) DagInfo() (DagInfo, error) {
	if m.Kind != KindGetBlockDagInfoResponse {
		return DagInfo{}, fmt.Errorf("cannot decode dag info from %s", m.Kind)
	}

	var (
		info   DagInfo
		rpcErr *RPCError
	)
	err := walkFields(m.Payload, func(f field) error {
		var err error
		switch f.num {
		case fieldDagInfoNetworkName:
			info.NetworkName = string(f.bytes)
		case fieldDagInfoBlockCount:
			info.BlockCount = f.value
		case fieldDagInfoHeaderCount:
			info.HeaderCount = f.value
		case fieldDagInfoDifficulty:
			info.Difficulty = f.float64()
		case fieldDagInfoVirtualDaaScore:
			info.VirtualDaaScore = f.value
		case fieldRPCError:
			rpcErr, err = decodeRPCError(f.bytes)
		}
		return err
	})
	if err != nil {
		return DagInfo{}, fmt.Errorf("decode dag info: %w", err)
	}
	if rpcErr != nil {
		return DagInfo{}, rpcErr
	}
	return info, nil
}

// CoinSupply decodes a getCoinSupply response.
func (m Message) CoinSupply() (CoinSupply, error) {
	if m.Kind != KindGetCoinSupplyResponse {
		return CoinSupply{}, fmt.Errorf("cannot decode coin supply from %s", m.Kind)
	}

	var (
		supply CoinSupply
		rpcErr *RPCError
	)
	err := walkFields(m.Payload, func(f field) error {
		var err error
		switch f.num {
		case fieldCoinSupplyMax:
			supply.MaxSompi = f.value
		case fieldCoinSupplyCirculating:
			supply.CirculatingSompi = f.value
		case fieldRPCError:
			rpcErr, err = decodeRPCError(f.bytes)
		}
		return err
	})
	if err != nil {
		return CoinSupply{}, fmt.Errorf("decode coin supply: %w", err)
	}
	if rpcErr != nil {
		return CoinSupply{}, rpcErr
	}
	return supply, nil
}

func decodeRPCError(b []byte) (*RPCError, error) {
	e := &RPCError{}
	err := walkFields(b, func(f field) error {
		if f.num == fieldRPCErrorMessage {
			e.Message = string(f.bytes)
		}
		return nil
	})
	return e, err
}

func (b *Block) unmarshal(data []byte) error {
	return walkFields(data, func(f field) error {
		switch f.num {
		case fieldBlockHeader:
			b.hasHeader = true
			return b.unmarshalHeader(f.bytes)
		case fieldBlockTransactions:
			var tx Transaction
			if err := tx.unmarshal(f.bytes); err != nil {
				return err
			}
			b.Transactions = append(b.Transactions, tx)
		case fieldBlockVerboseData:
			return b.unmarshalVerbose(f.bytes)
		}
		return nil
	})
}

func (b *Block) unmarshalHeader(data []byte) error {
	return walkFields(data, func(f field) error {
		switch f.num {
		case fieldHeaderTimestamp:
			b.Timestamp = int64(f.value)
		case fieldHeaderBits:
			b.Bits = uint32(f.value)
		case fieldHeaderDaaScore:
			b.DaaScore = f.value
		case fieldHeaderBlueScore:
			b.BlueScore = f.value
		}
		return nil
	})
}

func (b *Block) unmarshalVerbose(data []byte) error {
	return walkFields(data, func(f field) error {
		switch f.num {
		case fieldBlockVerboseHash:
			b.Hash = string(f.bytes)
		case fieldBlockVerboseDifficulty:
			b.Difficulty = f.float64()
		}
		return nil
	})
}

func (t *Transaction) unmarshal(data []byte) error {
	return walkFields(data, func(f field) error {
		switch f.num {
		case fieldTransactionOutputs:
			var out Output
			if err := out.unmarshal(f.bytes); err != nil {
				return err
			}
			t.Outputs = append(t.Outputs, out)
		case fieldTransactionVerboseData:
			return walkFields(f.bytes, func(vf field) error {
				if vf.num == fieldTransactionVerboseID {
					t.ID = string(vf.bytes)
				}
				return nil
			})
		}
		return nil
	})
}

func (o *Output) unmarshal(data []byte) error {
	return walkFields(data, func(f field) error {
		switch f.num {
		case fieldOutputAmount:
			o.Amount = f.value
		case fieldOutputVerboseData:
			return walkFields(f.bytes, func(vf field) error {
				if vf.num == fieldOutputVerboseAddress {
					o.Address = string(vf.bytes)
				}
				return nil
			})
		}
		return nil
	})
}
