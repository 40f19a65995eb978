package spectred

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the node's protowire schema.
const (
	fieldEnvelopeID protowire.Number = 101
	fieldRPCError   protowire.Number = 1000

	fieldRPCErrorMessage protowire.Number = 1

	fieldBlockAddedBlock protowire.Number = 3

	fieldBlockHeader       protowire.Number = 1
	fieldBlockTransactions protowire.Number = 2
	fieldBlockVerboseData  protowire.Number = 3

	fieldHeaderTimestamp protowire.Number = 6
	fieldHeaderBits      protowire.Number = 7
	fieldHeaderDaaScore  protowire.Number = 9
	fieldHeaderBlueScore protowire.Number = 13

	fieldBlockVerboseHash       protowire.Number = 1
	fieldBlockVerboseDifficulty protowire.Number = 11

	fieldTransactionOutputs     protowire.Number = 3
	fieldTransactionVerboseData protowire.Number = 9

	fieldTransactionVerboseID protowire.Number = 1

	fieldOutputAmount      protowire.Number = 1
	fieldOutputVerboseData protowire.Number = 3

	fieldOutputVerboseAddress protowire.Number = 6

	fieldDagInfoNetworkName     protowire.Number = 1
	fieldDagInfoBlockCount      protowire.Number = 2
	fieldDagInfoHeaderCount     protowire.Number = 3
	fieldDagInfoDifficulty      protowire.Number = 5
	fieldDagInfoVirtualDaaScore protowire.Number = 9

	fieldDaaScoreChangedScore protowire.Number = 1

	fieldCoinSupplyMax         protowire.Number = 1
	fieldCoinSupplyCirculating protowire.Number = 2
)

// field is one decoded key/value pair of a protowire message.
type field struct {
	num   protowire.Number
	typ   protowire.Type
	value uint64
	bytes []byte
}

func (f field) float64() float64 {
	return math.Float64frombits(f.value)
}

// walkFields calls fn for every top-level field of b in wire order.
func walkFields(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.value, n = protowire.ConsumeVarint(b)
		case protowire.Fixed64Type:
			f.value, n = protowire.ConsumeFixed64(b)
		case protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(b)
			f.value = uint64(v)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}
