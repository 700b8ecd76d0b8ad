package heredity

import (
	"sort"
)

// NameSet is a set of person names.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Minus returns the members of s that are not in other.
func (s NameSet) Minus(other NameSet) NameSet {
	out := make(NameSet)
	for name := range s {
		if !other.Has(name) {
			out[name] = struct{}{}
		}
	}
	return out
}

// subsetIterator walks every subset of a fixed universe of names, from
// the empty set through the full set, by counting a bitmask from 0 to
// 2^n - 1. Each call to Next materializes the subset for the current
// mask. Iterators share no mutable state, so nested and repeated walks
// over the same universe are safe.
//
// The mask limits the universe to 63 names, which is irrelevant in
// practice: the driver's full enumeration is 6^n hypotheses and becomes
// intractable long before n approaches the mask width.
type subsetIterator struct {
	universe []string
	mask     uint64
	done     bool
}

func newSubsetIterator(universe NameSet) *subsetIterator {
	names := make([]string, 0, len(universe))
	for name := range universe {
		names = append(names, name)
	}
	// Sorted so that enumeration order, and therefore floating-point
	// accumulation order, is reproducible across runs.
	sort.Strings(names)

	return &subsetIterator{universe: names}
}

// Next returns the next subset, or (nil, false) once all 2^n subsets
// have been produced.
func (it *subsetIterator) Next() (NameSet, bool) {
	if it.done {
		return nil, false
	}

	subset := make(NameSet)
	for i, name := range it.universe {
		if it.mask&(1<<uint(i)) != 0 {
			subset[name] = struct{}{}
		}
	}

	if it.mask == 1<<uint(len(it.universe))-1 {
		it.done = true
	}
	it.mask++

	return subset, true
}
