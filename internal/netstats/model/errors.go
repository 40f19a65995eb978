package model

import "errors"

var (
	// ErrConnection is returned when the node channel is not ready within the connect timeout.
	ErrConnection = errors.New("node connection not ready")
	// ErrProtocol marks inbound messages with an unrecognized payload kind.
	ErrProtocol = errors.New("unrecognized payload kind")
	// ErrMalformedBlock marks block payloads missing required fields.
	ErrMalformedBlock = errors.New("malformed block payload")
	// ErrPermitLeak is reported when a request permit is reclaimed without a response.
	ErrPermitLeak = errors.New("request permit reclaimed without response")
)
