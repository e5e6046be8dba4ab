package policy

import (
	"container/list"
)

// FIFOPolicy implements the First-In-First-Out (FIFO) replacement strategy.
type FIFOPolicy[P comparable] struct {
	order *list.List
	items map[P]*list.Element
}

// NewFIFO creates a new FIFO policy instance.
func NewFIFO[P comparable]() *FIFOPolicy[P] {
	return &FIFOPolicy[P]{
		order: list.New(),
		items: make(map[P]*list.Element),
	}
}

func (p *FIFOPolicy[P]) OnAccess(page P) {
	// FIFO does not change order on access
}

func (p *FIFOPolicy[P]) OnAdd(page P) {
	// A page keeps its original admission slot until it is removed.
	if _, ok := p.items[page]; ok {
		return
	}
	p.items[page] = p.order.PushBack(page)
}

func (p *FIFOPolicy[P]) OnRemove(page P) {
	if elem, ok := p.items[page]; ok {
		p.order.Remove(elem)
		delete(p.items, page)
	}
}

func (p *FIFOPolicy[P]) SelectVictim() (P, bool) {
	elem := p.order.Front() // The oldest element
	if elem == nil {
		var zero P
		return zero, false
	}
	return elem.Value.(P), true
}
