package service

import (
	"context"
	"testing"

	"page-replacement-simulator/internal/core/ports"
	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"
	"page-replacement-simulator/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// MockCache is a mock implementation of ports.ResultCache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key string) (*engine.Result[int], bool) {
	args := m.Called(key)
	res, _ := args.Get(0).(*engine.Result[int])
	return res, args.Bool(1)
}

func (m *MockCache) Set(key string, res *engine.Result[int]) {
	m.Called(key, res)
}

var belady = []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}

func TestServiceImpl_Simulate(t *testing.T) {
	svc := New(nil)

	res, err := svc.Simulate(context.Background(), policy.Optimal, belady, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Faults)
	assert.Len(t, res.Steps, len(belady))
}

func TestServiceImpl_SimulateCachesResult(t *testing.T) {
	cache := new(MockCache)
	svc := New(cache)
	ctx := context.Background()
	key := store.Key(policy.FIFO, belady, 3)

	// Miss: computed and stored
	cache.On("Get", key).Return(nil, false).Once()
	cache.On("Set", key, mock.MatchedBy(func(r *engine.Result[int]) bool {
		return r.Faults == 9
	})).Once()

	res, err := svc.Simulate(ctx, policy.FIFO, belady, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, res.Faults)

	// Hit: returned as-is, nothing stored
	cached := &engine.Result[int]{Policy: policy.FIFO, Capacity: 3, Faults: 9}
	cache.On("Get", key).Return(cached, true).Once()

	res, err = svc.Simulate(ctx, policy.FIFO, belady, 3)
	require.NoError(t, err)
	assert.Same(t, cached, res)

	cache.AssertExpectations(t)
}

func TestServiceImpl_SimulateRejectsInvalidConfiguration(t *testing.T) {
	cache := new(MockCache)
	svc := New(cache)
	cache.On("Get", mock.Anything).Return(nil, false)

	_, err := svc.Simulate(context.Background(), policy.LRU, belady, 0)
	assert.ErrorIs(t, err, engine.ErrInvalidConfiguration)

	// Failed runs are never cached
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestServiceImpl_SimulateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Simulate(ctx, policy.LRU, belady, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServiceImpl_Compare(t *testing.T) {
	svc := New(store.New())

	cmp, err := svc.Compare(context.Background(), belady, 3)
	require.NoError(t, err)
	require.Len(t, cmp.Results, 3)

	assert.Equal(t, policy.FIFO, cmp.Results[0].Policy)
	assert.Equal(t, policy.LRU, cmp.Results[1].Policy)
	assert.Equal(t, policy.Optimal, cmp.Results[2].Policy)
	assert.Equal(t, map[policy.Kind]int{
		policy.FIFO:    9,
		policy.LRU:     10,
		policy.Optimal: 7,
	}, cmp.Faults())
	assert.Equal(t, policy.Optimal, cmp.Best())
	assert.Equal(t, 3, cmp.Capacity)
}

func TestServiceImpl_CompareSelectedPolicies(t *testing.T) {
	svc := New(nil)

	cmp, err := svc.Compare(context.Background(), []int{1, 2, 3, 4}, 4, policy.LFU, policy.FIFO)
	require.NoError(t, err)
	require.Len(t, cmp.Results, 2)
	assert.Equal(t, policy.LFU, cmp.Results[0].Policy)
	// Equal counts: the first listed wins.
	assert.Equal(t, policy.LFU, cmp.Best())
}

func TestServiceImpl_CompareRunsRepeatedPolicyOnce(t *testing.T) {
	svc := New(nil)

	cmp, err := svc.Compare(context.Background(), belady, 3, policy.LRU, policy.FIFO, policy.LRU)
	require.NoError(t, err)
	require.Len(t, cmp.Results, 2)
	assert.Equal(t, policy.LRU, cmp.Results[0].Policy)
	assert.Equal(t, policy.FIFO, cmp.Results[1].Policy)
	assert.Len(t, cmp.Faults(), len(cmp.Results))
}

func TestServiceImpl_CompareFailsAsAWhole(t *testing.T) {
	svc := New(nil)

	cmp, err := svc.Compare(context.Background(), belady, 3, policy.FIFO, policy.Kind("CLOCK"))
	assert.Nil(t, cmp)
	assert.ErrorIs(t, err, engine.ErrInvalidConfiguration)
}

func TestServiceImpl_CompareUsesCachePerPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := ports.NewMockResultCache(ctrl)
	svc := New(cache)

	for _, kind := range policy.Kinds() {
		key := store.Key(kind, belady, 3)
		cache.EXPECT().Get(key).Return(nil, false)
		cache.EXPECT().Set(key, gomock.Any())
	}

	_, err := svc.Compare(context.Background(), belady, 3)
	require.NoError(t, err)
}

func TestComparison_BestOfNothing(t *testing.T) {
	cmp := &ports.Comparison{}
	assert.Equal(t, policy.Kind(""), cmp.Best())
	assert.Empty(t, cmp.Faults())
}
