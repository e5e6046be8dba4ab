package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"page-replacement-simulator/internal/core/ports"
	"page-replacement-simulator/internal/core/service"
	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpcgo "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type mockService struct {
	simulateFunc func(ctx context.Context, kind policy.Kind, refs []int, capacity int) (*engine.Result[int], error)
	compareFunc  func(ctx context.Context, refs []int, capacity int, kinds ...policy.Kind) (*ports.Comparison, error)
}

func (m *mockService) Simulate(ctx context.Context, kind policy.Kind, refs []int, capacity int) (*engine.Result[int], error) {
	return m.simulateFunc(ctx, kind, refs, capacity)
}
func (m *mockService) Compare(ctx context.Context, refs []int, capacity int, kinds ...policy.Kind) (*ports.Comparison, error) {
	return m.compareFunc(ctx, refs, capacity, kinds...)
}

var belady = []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}

func TestAdapter_Simulate(t *testing.T) {
	mock := &mockService{
		simulateFunc: func(ctx context.Context, kind policy.Kind, refs []int, capacity int) (*engine.Result[int], error) {
			assert.Equal(t, policy.LRU, kind)
			return engine.Simulate(kind, refs, capacity)
		},
	}
	adapter := New(mock)

	resp, err := adapter.Simulate(context.Background(), &SimulateRequest{Policy: "lru", Frames: 2, Refs: []int{1, 2, 1, 3}})
	require.NoError(t, err)
	assert.Equal(t, "LRU", resp.Policy)
	assert.Equal(t, 3, resp.Faults)
	assert.Equal(t, 1, resp.Hits)
	require.Len(t, resp.Steps, 4)

	assert.Nil(t, resp.Steps[2].Victim)
	last := resp.Steps[3]
	assert.Equal(t, 4, last.Index)
	require.NotNil(t, last.Victim)
	assert.Equal(t, 2, *last.Victim)
	assert.Equal(t, []int{1, 3}, last.Frames)
}

func TestAdapter_SimulateErrors(t *testing.T) {
	mock := &mockService{
		simulateFunc: func(ctx context.Context, kind policy.Kind, refs []int, capacity int) (*engine.Result[int], error) {
			if capacity <= 0 {
				return nil, engine.ErrInvalidCapacity("simulate", capacity)
			}
			return nil, errors.New("boom")
		},
	}
	adapter := New(mock)

	_, err := adapter.Simulate(context.Background(), &SimulateRequest{Policy: "CLOCK", Frames: 3})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = adapter.Simulate(context.Background(), &SimulateRequest{Policy: "FIFO", Frames: 0})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = adapter.Simulate(context.Background(), &SimulateRequest{Policy: "FIFO", Frames: 3})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestAdapter_Compare(t *testing.T) {
	mock := &mockService{
		compareFunc: func(ctx context.Context, refs []int, capacity int, kinds ...policy.Kind) (*ports.Comparison, error) {
			assert.Equal(t, []policy.Kind{policy.Optimal, policy.FIFO}, kinds)
			return service.New(nil).Compare(ctx, refs, capacity, kinds...)
		},
	}
	adapter := New(mock)

	resp, err := adapter.Compare(context.Background(), &CompareRequest{Frames: 3, Refs: belady, Policies: []string{"opt", "fifo"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"OPTIMAL": 7, "FIFO": 9}, resp.Faults)
	assert.Equal(t, []string{"OPTIMAL", "FIFO"}, resp.Order)
	assert.Equal(t, "OPTIMAL", resp.Best)
}

type fakeSender struct {
	ctx  context.Context
	sent []*StepMessage
}

func (f *fakeSender) Send(m *StepMessage) error {
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeSender) Context() context.Context {
	return f.ctx
}

func TestAdapter_StreamTrace(t *testing.T) {
	adapter := New(service.New(nil))
	sender := &fakeSender{ctx: context.Background()}

	err := adapter.StreamTrace(&SimulateRequest{Policy: "FIFO", Frames: 3, Refs: belady}, sender)
	require.NoError(t, err)
	require.Len(t, sender.sent, len(belady))

	faults := 0
	for _, m := range sender.sent {
		if m.Fault {
			faults++
		}
	}
	assert.Equal(t, 9, faults)
}

func dial(t *testing.T, svc ports.SimulationService) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewServer(svc)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpcgo.NewClient("passthrough:///bufnet",
		grpcgo.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpcgo.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn)
}

func TestServer_RoundTrip(t *testing.T) {
	client := dial(t, service.New(nil))
	ctx := context.Background()

	resp, err := client.Simulate(ctx, &SimulateRequest{Policy: "OPTIMAL", Frames: 3, Refs: belady})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Faults)
	assert.Equal(t, []int{5, 3, 4}, resp.Steps[len(resp.Steps)-1].Frames)

	cmp, err := client.Compare(ctx, &CompareRequest{Frames: 3, Refs: belady})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"FIFO": 9, "LRU": 10, "OPTIMAL": 7}, cmp.Faults)
	assert.Equal(t, []string{"FIFO", "LRU", "OPTIMAL"}, cmp.Order)

	var streamed []*StepMessage
	err = client.StreamTrace(ctx, &SimulateRequest{Policy: "LRU", Frames: 3, Refs: belady}, func(m *StepMessage) error {
		streamed = append(streamed, m)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, streamed, len(belady))
	assert.Equal(t, 1, streamed[0].Index)
	assert.Equal(t, []int{1}, streamed[0].Frames)
}

func TestServer_InvalidArgument(t *testing.T) {
	client := dial(t, service.New(nil))

	_, err := client.Simulate(context.Background(), &SimulateRequest{Policy: "FIFO", Frames: 0, Refs: belady})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	err = client.StreamTrace(context.Background(), &SimulateRequest{Policy: "NOPE", Frames: 3}, func(*StepMessage) error {
		t.Fatal("no steps expected")
		return nil
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
