package policy

import (
	"container/list"
)

// never marks a page with no reference after the current position.
const never = -1

// OptimalPolicy implements Belady's algorithm: evict the resident page whose
// next use lies farthest in the future.
//
// The policy is bound to one reference sequence. The owner reports each
// reference, in order, through exactly one OnAccess or OnAdd call, and asks
// for a victim before reporting the reference that caused the fault.
type OptimalPolicy[P comparable] struct {
	refs    []P
	nextUse []int // nextUse[i] is the next position after i referencing refs[i], or never
	cursor  int   // position of the reference being processed

	order *list.List // resident pages in admission order
	items map[P]*optimalEntry[P]
}

type optimalEntry[P comparable] struct {
	elem *list.Element
	next int // next position referencing the page, or never
}

// NewOptimal creates an Optimal policy over the given reference sequence.
func NewOptimal[P comparable](refs []P) *OptimalPolicy[P] {
	nextUse := make([]int, len(refs))
	last := make(map[P]int)
	for i := len(refs) - 1; i >= 0; i-- {
		if j, ok := last[refs[i]]; ok {
			nextUse[i] = j
		} else {
			nextUse[i] = never
		}
		last[refs[i]] = i
	}
	return &OptimalPolicy[P]{
		refs:    refs,
		nextUse: nextUse,
		order:   list.New(),
		items:   make(map[P]*optimalEntry[P]),
	}
}

func (p *OptimalPolicy[P]) OnAccess(page P) {
	if entry, ok := p.items[page]; ok {
		entry.next = p.upcoming(page)
	}
	p.cursor++
}

func (p *OptimalPolicy[P]) OnAdd(page P) {
	if entry, ok := p.items[page]; ok {
		entry.next = p.upcoming(page)
	} else {
		p.items[page] = &optimalEntry[P]{
			elem: p.order.PushBack(page),
			next: p.upcoming(page),
		}
	}
	p.cursor++
}

func (p *OptimalPolicy[P]) OnRemove(page P) {
	if entry, ok := p.items[page]; ok {
		p.order.Remove(entry.elem)
		delete(p.items, page)
	}
}

// SelectVictim scans resident pages in admission order. The first page that
// is never referenced again is returned immediately; otherwise the page with
// the strictly largest next use wins, so earlier pages win ties.
func (p *OptimalPolicy[P]) SelectVictim() (P, bool) {
	var victim P
	found := false
	farthest := -1
	for e := p.order.Front(); e != nil; e = e.Next() {
		page := e.Value.(P)
		next := p.items[page].next
		if next == never {
			return page, true
		}
		if next > farthest {
			farthest = next
			victim = page
			found = true
		}
	}
	return victim, found
}

// upcoming returns the next use of page strictly after the cursor.
func (p *OptimalPolicy[P]) upcoming(page P) int {
	if p.cursor < len(p.refs) && p.refs[p.cursor] == page {
		return p.nextUse[p.cursor]
	}
	// The owner reported a page out of step with the sequence; fall back to a scan.
	for j := p.cursor + 1; j < len(p.refs); j++ {
		if p.refs[j] == page {
			return j
		}
	}
	return never
}
