package stream

import (
	"context"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/spectred"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Stream is one open bidirectional message stream to a node.
	Stream interface {
		Send(req spectred.Request) error
		Recv() (spectred.Message, error)
		CloseSend() error
		Close() error
	}
	// Dialer establishes a Stream, failing with model.ErrConnection when the node is not
	// ready within its connect timeout.
	Dialer interface {
		Dial(ctx context.Context) (Stream, error)
	}
	// Handler consumes inbound messages in arrival order.
	Handler interface {
		Handle(ctx context.Context, msg spectred.Message)
	}
	// Metrics records per-session stream traffic and permit usage.
	Metrics interface {
		ObserveSent(kind string)
		ObserveReceived(kind string)
		SetPermitsInFlight(n int)
		ObservePermitLeak()
	}
)

// DialFunc adapts a function to Dialer.
type DialFunc func(ctx context.Context) (Stream, error)

// Dial calls f.
func (f DialFunc) Dial(ctx context.Context) (Stream, error) {
	return f(ctx)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, msg spectred.Message)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, msg spectred.Message) {
	f(ctx, msg)
}
