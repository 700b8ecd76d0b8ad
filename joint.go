package heredity

import (
	"github.com/carbocation/pfx"
)

// JointProbability computes the probability of one complete hypothesis:
// that everyone in oneGene carries exactly one copy of the variant,
// everyone in twoGenes carries two, everyone else carries zero, and that
// trait membership is exactly haveTrait. The hypothesis is validated
// first; enumerated hypotheses from Infer skip that step because they are
// correct by construction.
func JointProbability(ped Pedigree, m *Model, oneGene, twoGenes, haveTrait NameSet) (float64, error) {
	if err := validateHypothesis(ped, oneGene, twoGenes, haveTrait); err != nil {
		return 0, pfx.Err(err)
	}

	return jointProbability(ped, m, m.ChildGeneTable(), oneGene, twoGenes, haveTrait), nil
}

// jointProbability multiplies one factor per person: the probability of
// that person's hypothesized gene count (from the population prior, or
// from the transmission table given the parents' hypothesized counts)
// times the probability of their hypothesized trait status given that
// gene count. Conditioned on the parents' gene counts every factor is
// independent, so the product is the joint probability of the whole
// assignment.
func jointProbability(ped Pedigree, m *Model, table *ChildGeneTable, oneGene, twoGenes, haveTrait NameSet) float64 {
	joint := 1.0

	for name, person := range ped {
		g := geneCount(name, oneGene, twoGenes)

		var geneProb float64
		if person.HasParents() {
			mg := geneCount(person.Mother, oneGene, twoGenes)
			fg := geneCount(person.Father, oneGene, twoGenes)
			geneProb = table[mg][fg][g]
		} else {
			geneProb = m.GenePrior[g]
		}

		traitProb := m.TraitProb[g][TraitIndex(haveTrait.Has(name))]

		joint *= geneProb * traitProb
	}

	return joint
}
