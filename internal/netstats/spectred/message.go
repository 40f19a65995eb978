package spectred

import (
	"bytes"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Request is an outbound SpectredRequest envelope. Every supported request has an empty body.
type Request struct {
	Kind PayloadKind
	ID   uint64
}

// NewRequest builds a request envelope of the given kind.
func NewRequest(kind PayloadKind) Request {
	return Request{Kind: kind}
}

// Marshal encodes the envelope in protobuf wire format.
func (r Request) Marshal() ([]byte, error) {
	if !r.Kind.IsRequest() {
		return nil, fmt.Errorf("%s is not a request kind", r.Kind)
	}

	b := protowire.AppendTag(nil, protowire.Number(r.Kind), protowire.BytesType)
	b = protowire.AppendBytes(b, nil)
	if r.ID != 0 {
		b = protowire.AppendTag(b, fieldEnvelopeID, protowire.VarintType)
		b = protowire.AppendVarint(b, r.ID)
	}
	return b, nil
}

// Message is an inbound SpectredResponse envelope. Payload holds the raw oneof body and is
// decoded on demand so that a malformed body never breaks the stream itself.
type Message struct {
	Kind    PayloadKind
	ID      uint64
	Payload []byte
}

// Unmarshal decodes the envelope. The payload is copied because gRPC may reuse the buffer.
func (m *Message) Unmarshal(b []byte) error {
	*m = Message{}
	return walkFields(b, func(f field) error {
		switch {
		case f.num == fieldEnvelopeID && f.typ == protowire.VarintType:
			m.ID = f.value
		case f.typ == protowire.BytesType:
			m.Kind = PayloadKind(f.num)
			m.Payload = bytes.Clone(f.bytes)
		}
		return nil
	})
}
