package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// Distribution holds one person's marginal distributions: Gene[g] is the
// probability of carrying g copies of the variant, Trait is indexed by
// TraitIndex. Values accumulate unnormalized while hypotheses are
// enumerated and sum to 1 after Normalize.
type Distribution struct {
	Gene  [3]float64
	Trait [2]float64
}

// Distributions maps each person's name to their marginal distributions.
type Distributions map[string]*Distribution

// NewDistributions creates a zeroed accumulator covering every person in
// the pedigree.
func NewDistributions(ped Pedigree) Distributions {
	dists := make(Distributions, len(ped))
	for name := range ped {
		dists[name] = &Distribution{}
	}
	return dists
}

// accumulate adds one hypothesis's joint probability into every person's
// bucket for the gene count and trait status that hypothesis assigns
// them. Contributions are commutative, so partial accumulators from
// sharded runs can be merged afterwards with add.
func (dists Distributions) accumulate(oneGene, twoGenes, haveTrait NameSet, joint float64) {
	for name, dist := range dists {
		dist.Gene[geneCount(name, oneGene, twoGenes)] += joint
		dist.Trait[TraitIndex(haveTrait.Has(name))] += joint
	}
}

// add merges another accumulator elementwise.
func (dists Distributions) add(other Distributions) {
	for name, dist := range other {
		into, exists := dists[name]
		if !exists {
			into = &Distribution{}
			dists[name] = into
		}
		for g, p := range dist.Gene {
			into.Gene[g] += p
		}
		for t, p := range dist.Trait {
			into.Trait[t] += p
		}
	}
}

// Normalize rescales every person's gene and trait distributions so each
// sums to 1 while preserving relative proportions. A zero-mass
// distribution indicates the enumeration failed to cover the hypothesis
// space and yields ErrDivisionByZero.
func (dists Distributions) Normalize() error {
	for name, dist := range dists {
		geneSum := dist.Gene[0] + dist.Gene[1] + dist.Gene[2]
		traitSum := dist.Trait[0] + dist.Trait[1]

		if geneSum == 0 || traitSum == 0 {
			return pfx.Err(fmt.Errorf("%w: person %q", ErrDivisionByZero, name))
		}

		for g := range dist.Gene {
			dist.Gene[g] /= geneSum
		}
		for t := range dist.Trait {
			dist.Trait[t] /= traitSum
		}
	}

	return nil
}
