package heredity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/carbocation/pfx"
)

// ErrInvalidHypothesis indicates a hypothesis that references a name
// absent from the pedigree, or whose one-gene and two-gene sets overlap.
// A correct enumerator never constructs such a hypothesis, so seeing this
// error means a programming error in the caller.
var ErrInvalidHypothesis = errors.New("invalid hypothesis")

// ErrDivisionByZero indicates that a person's accumulated distribution has
// zero total mass at normalization time. The enumeration is exhaustive and
// at least one hypothesis always carries nonzero probability, so this too
// is a bug rather than a recoverable condition.
var ErrDivisionByZero = errors.New("cannot normalize a distribution with zero mass")

// Person is one individual in a pedigree. Mother and Father are the names
// of other people in the same pedigree, or empty if unknown; they must
// either both be set or both be empty. Trait is the observed phenotype
// evidence: nil when unobserved.
type Person struct {
	Name   string
	Mother string
	Father string
	Trait  *bool
}

// HasParents reports whether both of the person's parents are known.
func (p Person) HasParents() bool {
	return p.Mother != "" && p.Father != ""
}

// Pedigree maps each person's name to their record. It covers the whole
// population under consideration: every parent reference must resolve to
// a key in the same map.
type Pedigree map[string]Person

// Validate checks the structural invariants that the inference engine
// relies on: keys match the Name field, parents are either both known or
// both unknown, and every parent reference resolves within the pedigree.
func (ped Pedigree) Validate() error {
	for name, person := range ped {
		if person.Name != name {
			return pfx.Err(fmt.Errorf("person keyed %q carries name %q", name, person.Name))
		}
		if (person.Mother == "") != (person.Father == "") {
			return pfx.Err(fmt.Errorf("person %q has exactly one known parent; parents must be both known or both unknown", name))
		}
		if person.Mother != "" {
			if _, exists := ped[person.Mother]; !exists {
				return pfx.Err(fmt.Errorf("person %q references unknown mother %q", name, person.Mother))
			}
			if _, exists := ped[person.Father]; !exists {
				return pfx.Err(fmt.Errorf("person %q references unknown father %q", name, person.Father))
			}
		}
	}

	return nil
}

// Names returns the population as a NameSet.
func (ped Pedigree) Names() NameSet {
	names := make(NameSet, len(ped))
	for name := range ped {
		names[name] = struct{}{}
	}
	return names
}

// SortedNames returns the population's names in lexical order, for
// deterministic iteration and output.
func (ped Pedigree) SortedNames() []string {
	names := make([]string, 0, len(ped))
	for name := range ped {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
