// Package engine simulates page replacement over a fixed number of frames.
//
// A run is pure and deterministic: Simulate owns every piece of state it
// touches, so independent runs may execute in parallel without
// synchronization.
package engine

import (
	"fmt"
	"reflect"

	"page-replacement-simulator/internal/engine/policy"

	"golang.org/x/exp/slices"
)

// Step records the outcome of processing one reference.
type Step[P comparable] struct {
	Page    P    // the referenced page
	Fault   bool // the page was not resident
	Evicted bool // a victim was removed to make room
	Victim  P    // valid only when Evicted
	Frames  []P  // resident set after the reference, an independent copy
}

// Result is the trace and fault count of one simulation run.
type Result[P comparable] struct {
	Policy   policy.Kind
	Capacity int
	Steps    []Step[P]
	Faults   int
}

// Trace returns the resident-set snapshot after each reference.
func (r *Result[P]) Trace() [][]P {
	trace := make([][]P, len(r.Steps))
	for i, s := range r.Steps {
		trace[i] = s.Frames
	}
	return trace
}

// Hits returns the number of references served without a fault.
func (r *Result[P]) Hits() int {
	return len(r.Steps) - r.Faults
}

// Simulate runs one replacement policy over refs with the given number of
// frames and returns the per-step trace and the total fault count.
//
// A non-positive capacity or an unknown policy is rejected with
// ErrInvalidConfiguration; a reference that is nil, unhashable or not equal
// to itself (NaN) with ErrInvalidInput. Both are checked before any
// reference is processed.
func Simulate[P comparable](kind policy.Kind, refs []P, capacity int) (*Result[P], error) {
	const op = "simulate"

	if capacity <= 0 {
		return nil, ErrInvalidCapacity(op, capacity)
	}
	for i, p := range refs {
		if detail, ok := pageLike(p); !ok {
			return nil, ErrMalformedReference(op, i, detail)
		}
	}
	pol, err := policy.New(kind, refs)
	if err != nil {
		return nil, ErrUnknownPolicy(op, err)
	}

	frames := newResidentSet[P](capacity)
	res := &Result[P]{
		Policy:   kind,
		Capacity: capacity,
		Steps:    make([]Step[P], 0, len(refs)),
	}

	for _, p := range refs {
		step := Step[P]{Page: p}
		if frames.contains(p) {
			pol.OnAccess(p)
		} else {
			step.Fault = true
			res.Faults++
			if frames.full() {
				victim, ok := pol.SelectVictim()
				if !ok {
					// Unreachable while the policy mirrors the resident set.
					panic("replacement policy lost track of resident pages")
				}
				frames.remove(victim)
				pol.OnRemove(victim)
				step.Evicted = true
				step.Victim = victim
			}
			frames.add(p)
			pol.OnAdd(p)
		}
		step.Frames = frames.snapshot()
		res.Steps = append(res.Steps, step)
	}

	return res, nil
}

// pageLike reports whether p can serve as a page identifier: it must equal
// itself and be usable as a map key. NaN fails the first test; interfaces
// holding slices, maps or funcs, also inside structs and arrays, the second.
func pageLike[P comparable](p P) (detail string, ok bool) {
	v := any(p)
	if v == nil {
		return "nil", false
	}
	if t := reflect.TypeOf(v); !t.Comparable() {
		return fmt.Sprintf("%s values cannot be compared", t), false
	}
	defer func() {
		if r := recover(); r != nil {
			detail, ok = fmt.Sprint(r), false
		}
	}()
	if p != p {
		return fmt.Sprintf("%v is not equal to itself", v), false
	}
	_ = map[P]struct{}{p: {}}
	return "", true
}

// residentSet holds the pages in memory in admission order.
type residentSet[P comparable] struct {
	capacity int
	pages    []P
	present  map[P]struct{}
}

func newResidentSet[P comparable](capacity int) *residentSet[P] {
	return &residentSet[P]{
		capacity: capacity,
		pages:    make([]P, 0, capacity),
		present:  make(map[P]struct{}, capacity),
	}
}

func (s *residentSet[P]) contains(p P) bool {
	_, ok := s.present[p]
	return ok
}

func (s *residentSet[P]) full() bool {
	return len(s.pages) >= s.capacity
}

func (s *residentSet[P]) add(p P) {
	s.pages = append(s.pages, p)
	s.present[p] = struct{}{}
}

func (s *residentSet[P]) remove(p P) {
	if i := slices.Index(s.pages, p); i >= 0 {
		s.pages = slices.Delete(s.pages, i, i+1)
	}
	delete(s.present, p)
}

func (s *residentSet[P]) snapshot() []P {
	return slices.Clone(s.pages)
}
