package grpc

import (
	"context"

	grpcgo "google.golang.org/grpc"
)

const (
	serviceName           = "pagesim.Simulator"
	simulateFullMethod    = "/" + serviceName + "/Simulate"
	compareFullMethod     = "/" + serviceName + "/Compare"
	streamTraceFullMethod = "/" + serviceName + "/StreamTrace"
)

// ServiceDesc describes pagesim.Simulator for grpc.Server.RegisterService.
var ServiceDesc = grpcgo.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*SimulatorServer)(nil),
	Methods: []grpcgo.MethodDesc{
		{
			MethodName: "Simulate",
			Handler:    simulateHandler,
		},
		{
			MethodName: "Compare",
			Handler:    compareHandler,
		},
	},
	Streams: []grpcgo.StreamDesc{
		{
			StreamName:    "StreamTrace",
			Handler:       streamTraceHandler,
			ServerStreams: true,
		},
	},
	Metadata: "pagesim",
}

func simulateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpcgo.UnaryServerInterceptor) (any, error) {
	in := new(SimulateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServer).Simulate(ctx, in)
	}
	info := &grpcgo.UnaryServerInfo{
		Server:     srv,
		FullMethod: simulateFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SimulatorServer).Simulate(ctx, req.(*SimulateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func compareHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpcgo.UnaryServerInterceptor) (any, error) {
	in := new(CompareRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServer).Compare(ctx, in)
	}
	info := &grpcgo.UnaryServerInfo{
		Server:     srv,
		FullMethod: compareFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SimulatorServer).Compare(ctx, req.(*CompareRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func streamTraceHandler(srv any, stream grpcgo.ServerStream) error {
	in := new(SimulateRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(SimulatorServer).StreamTrace(in, &stepStream{stream})
}

type stepStream struct {
	grpcgo.ServerStream
}

func (s *stepStream) Send(m *StepMessage) error {
	return s.ServerStream.SendMsg(m)
}
