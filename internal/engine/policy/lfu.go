package policy

import (
	"container/heap"
)

// lfuItem represents a page in the priority queue.
type lfuItem[P comparable] struct {
	page      P
	frequency int
	admitted  uint64 // admission tick, breaks frequency ties
	index     int    // The index of the item in the heap.
}

// priorityQueue implements heap.Interface and holds lfuItems.
type priorityQueue[P comparable] []*lfuItem[P]

func (pq priorityQueue[P]) Len() int { return len(pq) }

func (pq priorityQueue[P]) Less(i, j int) bool {
	// Pop yields the lowest frequency; among equals the oldest admission.
	if pq[i].frequency != pq[j].frequency {
		return pq[i].frequency < pq[j].frequency
	}
	return pq[i].admitted < pq[j].admitted
}

func (pq priorityQueue[P]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue[P]) Push(x any) {
	item := x.(*lfuItem[P])
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue[P]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.index = -1 // for safety
	*pq = old[0 : n-1]
	return item
}

// LFUPolicy implements the Least Frequently Used (LFU) replacement strategy.
// Frequencies are counted while a page is resident and reset on eviction.
type LFUPolicy[P comparable] struct {
	pq    priorityQueue[P]
	items map[P]*lfuItem[P]
	tick  uint64
}

// NewLFU creates a new LFU policy instance.
func NewLFU[P comparable]() *LFUPolicy[P] {
	return &LFUPolicy[P]{
		pq:    make(priorityQueue[P], 0),
		items: make(map[P]*lfuItem[P]),
	}
}

func (p *LFUPolicy[P]) OnAccess(page P) {
	if item, ok := p.items[page]; ok {
		item.frequency++
		heap.Fix(&p.pq, item.index)
	}
}

func (p *LFUPolicy[P]) OnAdd(page P) {
	if item, ok := p.items[page]; ok {
		item.frequency++
		heap.Fix(&p.pq, item.index)
		return
	}
	p.tick++
	item := &lfuItem[P]{
		page:      page,
		frequency: 1,
		admitted:  p.tick,
	}
	heap.Push(&p.pq, item)
	p.items[page] = item
}

func (p *LFUPolicy[P]) OnRemove(page P) {
	if item, ok := p.items[page]; ok {
		heap.Remove(&p.pq, item.index)
		delete(p.items, page)
	}
}

func (p *LFUPolicy[P]) SelectVictim() (P, bool) {
	if len(p.pq) == 0 {
		var zero P
		return zero, false
	}
	// Peek the min item
	return p.pq[0].page, true
}
