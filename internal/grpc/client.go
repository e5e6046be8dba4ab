package grpc

import (
	"context"
	"errors"
	"io"

	grpcgo "google.golang.org/grpc"
)

// Client calls pagesim.Simulator over an existing connection.
type Client struct {
	cc grpcgo.ClientConnInterface
}

func NewClient(cc grpcgo.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Simulate(ctx context.Context, in *SimulateRequest, opts ...grpcgo.CallOption) (*SimulateResponse, error) {
	out := new(SimulateResponse)
	if err := c.cc.Invoke(ctx, simulateFullMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Compare(ctx context.Context, in *CompareRequest, opts ...grpcgo.CallOption) (*CompareResponse, error) {
	out := new(CompareResponse)
	if err := c.cc.Invoke(ctx, compareFullMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// StreamTrace calls fn for every streamed step until the server closes the
// stream. An error from fn cancels the call.
func (c *Client) StreamTrace(ctx context.Context, in *SimulateRequest, fn func(*StepMessage) error, opts ...grpcgo.CallOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.cc.NewStream(ctx, &ServiceDesc.Streams[0], streamTraceFullMethod, withCodec(opts)...)
	if err != nil {
		return err
	}
	if err := stream.SendMsg(in); err != nil {
		return err
	}
	if err := stream.CloseSend(); err != nil {
		return err
	}
	for {
		msg := new(StepMessage)
		if err := stream.RecvMsg(msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := fn(msg); err != nil {
			return err
		}
	}
}

func withCodec(opts []grpcgo.CallOption) []grpcgo.CallOption {
	return append([]grpcgo.CallOption{grpcgo.CallContentSubtype(CodecName)}, opts...)
}
