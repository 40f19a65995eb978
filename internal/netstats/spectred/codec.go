package spectred

import "fmt"

// Codec plugs the envelope encoding into gRPC. Requests are marshaled, messages unmarshaled.
type Codec struct{}

// Name reports "proto" so the content-subtype matches what the node expects.
func (Codec) Name() string {
	return "proto"
}

func (Codec) Marshal(v any) ([]byte, error) {
	switch req := v.(type) {
	case *Request:
		return req.Marshal()
	case Request:
		return req.Marshal()
	default:
		return nil, fmt.Errorf("spectred codec: cannot marshal %T", v)
	}
}

func (Codec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(*Message)
	if !ok {
		return fmt.Errorf("spectred codec: cannot unmarshal into %T", v)
	}
	return msg.Unmarshal(data)
}
