package service

import (
	"context"
	"errors"
	"time"

	"page-replacement-simulator/internal/core/ports"
	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"
	"page-replacement-simulator/internal/observability"
	"page-replacement-simulator/internal/store"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ensure implementation
var _ ports.SimulationService = (*ServiceImpl)(nil)

type ServiceImpl struct {
	cache ports.ResultCache
}

// New creates the service. A nil cache disables memoization.
func New(cache ports.ResultCache) *ServiceImpl {
	return &ServiceImpl{
		cache: cache,
	}
}

// Simulate runs one policy, answering from the cache when the same request
// was seen before. Runs are deterministic, so cached results are exact.
func (s *ServiceImpl) Simulate(ctx context.Context, kind policy.Kind, refs []int, capacity int) (*engine.Result[int], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var key string
	if s.cache != nil {
		key = store.Key(kind, refs, capacity)
		if res, found := s.cache.Get(key); found {
			observability.ResultCacheHitsTotal.Inc()
			observability.SimulationsTotal.WithLabelValues(string(kind), "cached").Inc()
			return res, nil
		}
		observability.ResultCacheMissesTotal.Inc()
	}

	start := time.Now()
	res, err := engine.Simulate(kind, refs, capacity)
	if err != nil {
		observability.SimulationsTotal.WithLabelValues(string(kind), status(err)).Inc()
		log.WithError(err).WithFields(log.Fields{
			"policy":     kind,
			"capacity":   capacity,
			"references": len(refs),
		}).Warn("Simulation request rejected.")
		return nil, err
	}
	observability.SimulationDurationSeconds.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	observability.SimulationsTotal.WithLabelValues(string(kind), "success").Inc()
	observability.PageFaultsTotal.WithLabelValues(string(kind)).Add(float64(res.Faults))
	observability.PageHitsTotal.WithLabelValues(string(kind)).Add(float64(res.Hits()))

	log.WithFields(log.Fields{
		"policy":     kind,
		"capacity":   capacity,
		"references": len(refs),
		"faults":     res.Faults,
	}).Debug("Simulation finished.")

	if s.cache != nil {
		s.cache.Set(key, res)
	}
	return res, nil
}

// Compare runs the given policies (FIFO, LRU and OPTIMAL by default) over the
// same input concurrently. Results keep the order of kinds; a repeated kind
// is run once.
func (s *ServiceImpl) Compare(ctx context.Context, refs []int, capacity int, kinds ...policy.Kind) (*ports.Comparison, error) {
	if len(kinds) == 0 {
		kinds = policy.Kinds()
	}
	kinds = distinct(kinds)

	results := make([]*engine.Result[int], len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			res, err := s.Simulate(gctx, kind, refs, capacity)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ports.Comparison{
		Capacity: capacity,
		Results:  results,
	}, nil
}

func distinct(kinds []policy.Kind) []policy.Kind {
	seen := make(map[policy.Kind]struct{}, len(kinds))
	out := make([]policy.Kind, 0, len(kinds))
	for _, k := range kinds {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func status(err error) string {
	switch {
	case errors.Is(err, engine.ErrInvalidConfiguration):
		return "invalid_configuration"
	case errors.Is(err, engine.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
