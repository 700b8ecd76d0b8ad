package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// A hypothesis is one fully specified assignment of gene counts and trait
// membership to the population: everyone in oneGene carries one copy,
// everyone in twoGenes carries two, everyone else carries zero; everyone
// in haveTrait exhibits the trait, everyone else does not.

// validateHypothesis rejects hypotheses that a correct enumerator can
// never produce: names outside the pedigree, or a person claimed to carry
// both one and two copies at once.
func validateHypothesis(ped Pedigree, oneGene, twoGenes, haveTrait NameSet) error {
	for _, set := range []NameSet{oneGene, twoGenes, haveTrait} {
		for name := range set {
			if _, exists := ped[name]; !exists {
				return pfx.Err(fmt.Errorf("%w: name %q is not in the pedigree", ErrInvalidHypothesis, name))
			}
		}
	}

	for name := range oneGene {
		if twoGenes.Has(name) {
			return pfx.Err(fmt.Errorf("%w: %q appears in both the one-gene and two-gene sets", ErrInvalidHypothesis, name))
		}
	}

	return nil
}

// geneCount resolves a person's hypothesized gene count from the two
// membership sets.
func geneCount(name string, oneGene, twoGenes NameSet) int {
	switch {
	case oneGene.Has(name):
		return 1
	case twoGenes.Has(name):
		return 2
	default:
		return 0
	}
}

// ConsistentWithEvidence reports whether a candidate trait set agrees
// with every piece of observed trait evidence in the pedigree. A single
// disagreement rejects the whole assignment.
func ConsistentWithEvidence(ped Pedigree, haveTrait NameSet) bool {
	for name, person := range ped {
		if person.Trait == nil {
			continue
		}
		if *person.Trait != haveTrait.Has(name) {
			return false
		}
	}

	return true
}
