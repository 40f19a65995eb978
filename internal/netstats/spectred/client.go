package spectred

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	messageStreamMethod = "/protowire.RPC/MessageStream"
	maxMessageSize      = 64 << 20
)

var messageStreamDesc = grpc.StreamDesc{
	StreamName:    "MessageStream",
	ServerStreams: true,
	ClientStreams: true,
}

// Dialer opens MessageStream sessions against a single node.
type Dialer struct {
	addr           string
	connectTimeout time.Duration
	options        []grpc.DialOption
}

// NewDialer builds a Dialer for addr (host:port). Each Dial waits at most connectTimeout
// for the channel to become ready.
func NewDialer(addr string, connectTimeout time.Duration, logger *zap.Logger) (*Dialer, error) {
	if addr == "" {
		return nil, errors.New("node address is required")
	}
	if connectTimeout <= 0 {
		return nil, errors.New("connect timeout must be positive")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	interceptors := grpcMiddleware.ChainStreamClient(
		grpcZap.StreamClientInterceptor(logger.Named("grpc")),
		grpcPrometheus.StreamClientInterceptor,
	)

	return &Dialer{
		addr:           addr,
		connectTimeout: connectTimeout,
		options: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithStreamInterceptor(interceptors),
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(maxMessageSize),
				grpc.MaxCallSendMsgSize(maxMessageSize),
			),
		},
	}, nil
}

// Addr returns the node address.
func (d *Dialer) Addr() string {
	return d.addr
}

// Dial connects and opens the message stream. The stream lives until ctx ends or the
// stream is closed. A channel that is not ready in time yields model.ErrConnection.
func (d *Dialer) Dial(ctx context.Context) (*Stream, error) {
	conn, err := grpc.NewClient(d.addr, d.options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrConnection, d.addr, err)
	}

	if err := d.waitReady(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	cs, err := conn.NewStream(ctx, &messageStreamDesc, messageStreamMethod, grpc.ForceCodec(Codec{}))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open message stream: %w", err)
	}

	return &Stream{conn: conn, cs: cs}, nil
}

func (d *Dialer) waitReady(ctx context.Context, conn *grpc.ClientConn) error {
	ctx, cancel := context.WithTimeout(ctx, d.connectTimeout)
	defer cancel()

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if !conn.WaitForStateChange(ctx, state) {
			return fmt.Errorf("%w: %s not ready within %s (state %s)", model.ErrConnection, d.addr, d.connectTimeout, state)
		}
	}
}

// Stream is one open MessageStream call.
type Stream struct {
	conn *grpc.ClientConn
	cs   grpc.ClientStream
}

func (s *Stream) Send(req Request) error {
	return s.cs.SendMsg(&req)
}

func (s *Stream) Recv() (Message, error) {
	var msg Message
	if err := s.cs.RecvMsg(&msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// CloseSend half-closes the stream. Inbound messages keep flowing.
func (s *Stream) CloseSend() error {
	return s.cs.CloseSend()
}

// Close tears down the underlying connection.
func (s *Stream) Close() error {
	return s.conn.Close()
}
