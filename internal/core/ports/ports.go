package ports

//go:generate mockgen -source=ports.go -destination=ports_mocks.go -package=ports

import (
	"context"

	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"
)

// SimulationService maps incoming requests to the replacement engine
type SimulationService interface {
	Simulate(ctx context.Context, kind policy.Kind, refs []int, capacity int) (*engine.Result[int], error)
	Compare(ctx context.Context, refs []int, capacity int, kinds ...policy.Kind) (*Comparison, error)
}

// ResultCache defines the interface for memoizing simulation results
type ResultCache interface {
	Get(key string) (*engine.Result[int], bool)
	Set(key string, res *engine.Result[int])
}

// Comparison holds one result per policy for the same input, in request order.
type Comparison struct {
	Capacity int
	Results  []*engine.Result[int]
}

// Faults maps each compared policy to its fault count.
func (c *Comparison) Faults() map[policy.Kind]int {
	out := make(map[policy.Kind]int, len(c.Results))
	for _, r := range c.Results {
		out[r.Policy] = r.Faults
	}
	return out
}

// Best returns the policy with the fewest faults; earlier policies win ties.
func (c *Comparison) Best() policy.Kind {
	var best *engine.Result[int]
	for _, r := range c.Results {
		if best == nil || r.Faults < best.Faults {
			best = r
		}
	}
	if best == nil {
		return ""
	}
	return best.Policy
}
