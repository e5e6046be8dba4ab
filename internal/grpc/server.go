package grpc

import (
	"context"
	"errors"
	"time"

	"page-replacement-simulator/internal/core/ports"
	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"

	log "github.com/sirupsen/logrus"
	grpcgo "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SimulatorServer is the server API for the pagesim.Simulator service.
type SimulatorServer interface {
	Simulate(context.Context, *SimulateRequest) (*SimulateResponse, error)
	Compare(context.Context, *CompareRequest) (*CompareResponse, error)
	StreamTrace(*SimulateRequest, StepSender) error
}

// StepSender is the server side of a StreamTrace call.
type StepSender interface {
	Send(*StepMessage) error
	Context() context.Context
}

// Adapter implements SimulatorServer on top of the simulation service.
type Adapter struct {
	service ports.SimulationService
}

var _ SimulatorServer = (*Adapter)(nil)

// New creates a new gRPC adapter.
func New(service ports.SimulationService) *Adapter {
	return &Adapter{service: service}
}

// NewServer returns a grpc.Server with the adapter registered. Messages are
// always encoded with the JSON codec.
func NewServer(service ports.SimulationService, opts ...grpcgo.ServerOption) *grpcgo.Server {
	opts = append([]grpcgo.ServerOption{
		grpcgo.ForceServerCodec(jsonCodec{}),
		grpcgo.ChainUnaryInterceptor(logUnary),
	}, opts...)
	srv := grpcgo.NewServer(opts...)
	srv.RegisterService(&ServiceDesc, New(service))
	return srv
}

// Simulate runs one policy and returns the whole trace.
func (s *Adapter) Simulate(ctx context.Context, req *SimulateRequest) (*SimulateResponse, error) {
	kind, err := policy.ParseKind(req.Policy)
	if err != nil {
		return nil, toStatus(engine.ErrUnknownPolicy("grpc simulate", err))
	}
	res, err := s.service.Simulate(ctx, kind, req.Refs, req.Frames)
	if err != nil {
		return nil, toStatus(err)
	}
	return simulateResponse(res), nil
}

// Compare runs the requested policies over the same input.
func (s *Adapter) Compare(ctx context.Context, req *CompareRequest) (*CompareResponse, error) {
	kinds := make([]policy.Kind, 0, len(req.Policies))
	for _, name := range req.Policies {
		kind, err := policy.ParseKind(name)
		if err != nil {
			return nil, toStatus(engine.ErrUnknownPolicy("grpc compare", err))
		}
		kinds = append(kinds, kind)
	}

	cmp, err := s.service.Compare(ctx, req.Refs, req.Frames, kinds...)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &CompareResponse{
		Frames: cmp.Capacity,
		Faults: make(map[string]int, len(cmp.Results)),
		Order:  make([]string, 0, len(cmp.Results)),
		Best:   string(cmp.Best()),
	}
	for _, r := range cmp.Results {
		resp.Faults[string(r.Policy)] = r.Faults
		resp.Order = append(resp.Order, string(r.Policy))
	}
	return resp, nil
}

// StreamTrace sends the trace one step per message, for clients that
// animate the run.
func (s *Adapter) StreamTrace(req *SimulateRequest, stream StepSender) error {
	kind, err := policy.ParseKind(req.Policy)
	if err != nil {
		return toStatus(engine.ErrUnknownPolicy("grpc stream trace", err))
	}
	res, err := s.service.Simulate(stream.Context(), kind, req.Refs, req.Frames)
	if err != nil {
		return toStatus(err)
	}
	for i, step := range res.Steps {
		if err := stream.Send(stepMessage(i, step)); err != nil {
			return err
		}
	}
	return nil
}

func toStatus(err error) error {
	switch {
	case engine.CodeOf(err) != engine.ErrCodeUnknown:
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func logUnary(ctx context.Context, req any, info *grpcgo.UnaryServerInfo, handler grpcgo.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	entry := log.WithFields(log.Fields{
		"method":   info.FullMethod,
		"duration": time.Since(start),
	})
	if err != nil {
		entry.WithError(err).Info("gRPC call failed.")
	} else {
		entry.Debug("gRPC call served.")
	}
	return resp, err
}
