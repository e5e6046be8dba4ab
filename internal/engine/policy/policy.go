package policy

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Policy defines the interface for replacement algorithms.
// Implementations let the owner of a resident set decouple capacity management
// from victim selection. They are not safe for concurrent use; owners
// serialize calls.
type Policy[P comparable] interface {
	// OnAccess is called when a resident page is referenced again.
	OnAccess(page P)

	// OnAdd is called when a page is admitted to the resident set.
	OnAdd(page P)

	// OnRemove is called when a page leaves the resident set.
	OnRemove(page P)

	// SelectVictim returns the page that should be evicted according to the policy.
	// Returns false if no page is resident.
	SelectVictim() (P, bool)
}

// Kind names a replacement algorithm.
type Kind string

const (
	FIFO    Kind = "FIFO"
	LRU     Kind = "LRU"
	Optimal Kind = "OPTIMAL"
	LFU     Kind = "LFU"
	Random  Kind = "RANDOM"
)

// DefaultRandomSeed keeps RANDOM runs reproducible.
const DefaultRandomSeed int64 = 1

// Kinds returns the policies compared by default, in presentation order.
func Kinds() []Kind {
	return []Kind{FIFO, LRU, Optimal}
}

// AllKinds returns every supported policy.
func AllKinds() []Kind {
	return []Kind{FIFO, LRU, Optimal, LFU, Random}
}

// ParseKind accepts a policy name in any case. The menu numbers 1, 2 and 3
// select FIFO, LRU and OPTIMAL.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FIFO", "1":
		return FIFO, nil
	case "LRU", "2":
		return LRU, nil
	case "OPTIMAL", "OPT", "BELADY", "3":
		return Optimal, nil
	case "LFU":
		return LFU, nil
	case "RANDOM", "RAND":
		return Random, nil
	default:
		return "", fmt.Errorf("unknown policy %q", s)
	}
}

// Valid reports whether k names a supported policy.
func (k Kind) Valid() bool {
	return slices.Contains(AllKinds(), k)
}

// New creates a policy instance for a single simulation over refs.
// Only OPTIMAL looks at refs.
func New[P comparable](kind Kind, refs []P) (Policy[P], error) {
	if kind == Optimal {
		return NewOptimal(refs), nil
	}
	return NewOnline[P](kind)
}

// NewOnline creates a policy that needs no knowledge of future references.
func NewOnline[P comparable](kind Kind) (Policy[P], error) {
	switch kind {
	case FIFO:
		return NewFIFO[P](), nil
	case LRU:
		return NewLRU[P](), nil
	case LFU:
		return NewLFU[P](), nil
	case Random:
		return NewRandom[P](DefaultRandomSeed), nil
	case Optimal:
		return nil, fmt.Errorf("policy %s requires the full reference sequence", kind)
	default:
		return nil, fmt.Errorf("unknown policy %q", string(kind))
	}
}
