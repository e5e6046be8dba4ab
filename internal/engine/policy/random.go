package policy

import (
	"math/rand"
)

// RandomPolicy implements a random replacement strategy.
// Victims are drawn from a seeded source, so a run is reproducible
// for a given seed.
type RandomPolicy[P comparable] struct {
	items []P
	index map[P]int
	rnd   *rand.Rand
}

// NewRandom creates a new Random policy drawing from the given seed.
func NewRandom[P comparable](seed int64) *RandomPolicy[P] {
	return newRandomWithRand[P](rand.New(rand.NewSource(seed)))
}

// newRandomWithRand creates a new Random policy with a specific random source (for testing).
func newRandomWithRand[P comparable](r *rand.Rand) *RandomPolicy[P] {
	return &RandomPolicy[P]{
		items: make([]P, 0),
		index: make(map[P]int),
		rnd:   r,
	}
}

// OnAccess acts as a no-op for the Random policy.
func (p *RandomPolicy[P]) OnAccess(page P) {}

// OnAdd adds a new page to the candidate pool.
func (p *RandomPolicy[P]) OnAdd(page P) {
	if _, ok := p.index[page]; ok {
		return
	}
	p.index[page] = len(p.items)
	p.items = append(p.items, page)
}

// OnRemove removes a page from the candidate pool with a swap-remove,
// which does not preserve order.
func (p *RandomPolicy[P]) OnRemove(page P) {
	i, ok := p.index[page]
	if !ok {
		return
	}
	lastIdx := len(p.items) - 1
	p.items[i] = p.items[lastIdx]
	p.index[p.items[i]] = i
	p.items = p.items[:lastIdx]
	delete(p.index, page)
}

// SelectVictim chooses a uniformly random resident page.
func (p *RandomPolicy[P]) SelectVictim() (P, bool) {
	if len(p.items) == 0 {
		var zero P
		return zero, false
	}
	return p.items[p.rnd.Intn(len(p.items))], true
}
