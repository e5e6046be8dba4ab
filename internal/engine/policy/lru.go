package policy

import (
	"container/list"
)

// LRUPolicy implements the Least Recently Used (LRU) replacement strategy.
// The recency history runs from least recently used (front) to most
// recently used (back).
type LRUPolicy[P comparable] struct {
	history *list.List
	items   map[P]*list.Element
}

// NewLRU creates a new LRU policy instance.
func NewLRU[P comparable]() *LRUPolicy[P] {
	return &LRUPolicy[P]{
		history: list.New(),
		items:   make(map[P]*list.Element),
	}
}

func (p *LRUPolicy[P]) OnAccess(page P) {
	if elem, ok := p.items[page]; ok {
		p.history.MoveToBack(elem)
	}
}

func (p *LRUPolicy[P]) OnAdd(page P) {
	// If already tracked, just update recency
	if elem, ok := p.items[page]; ok {
		p.history.MoveToBack(elem)
		return
	}
	p.items[page] = p.history.PushBack(page)
}

func (p *LRUPolicy[P]) OnRemove(page P) {
	if elem, ok := p.items[page]; ok {
		p.history.Remove(elem)
		delete(p.items, page)
	}
}

func (p *LRUPolicy[P]) SelectVictim() (P, bool) {
	elem := p.history.Front()
	if elem == nil {
		var zero P
		return zero, false
	}
	return elem.Value.(P), true
}

// History returns the tracked pages, least recently used first.
func (p *LRUPolicy[P]) History() []P {
	out := make([]P, 0, p.history.Len())
	for e := p.history.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(P))
	}
	return out
}
