package heredity

import (
	"sync"

	"github.com/carbocation/pfx"
)

// Infer computes, for every person in the pedigree, the posterior
// marginal distributions over gene count and trait status given the trait
// evidence recorded in the pedigree. It enumerates every candidate trait
// set, discards those contradicting the evidence, and for each survivor
// enumerates every disjoint (one-gene, two-genes) pair, accumulating each
// hypothesis's joint probability before normalizing.
//
// The enumeration is deliberately exhaustive brute force, 6^n hypotheses
// for n people. Exactness, not speed, is the contract.
func Infer(ped Pedigree, m *Model) (Distributions, error) {
	if err := ped.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	names := ped.Names()
	table := m.ChildGeneTable()
	dists := NewDistributions(ped)

	traits := newSubsetIterator(names)
	for haveTrait, ok := traits.Next(); ok; haveTrait, ok = traits.Next() {
		if !ConsistentWithEvidence(ped, haveTrait) {
			continue
		}
		accumulateGeneHypotheses(ped, m, table, names, haveTrait, dists)
	}

	if err := dists.Normalize(); err != nil {
		return nil, pfx.Err(err)
	}

	return dists, nil
}

// accumulateGeneHypotheses walks every gene assignment for one accepted
// trait set: all subsets for the one-gene group, then all subsets of the
// remaining names for the two-gene group, which keeps the two groups
// disjoint by construction.
func accumulateGeneHypotheses(ped Pedigree, m *Model, table *ChildGeneTable, names, haveTrait NameSet, dists Distributions) {
	ones := newSubsetIterator(names)
	for oneGene, ok := ones.Next(); ok; oneGene, ok = ones.Next() {
		twos := newSubsetIterator(names.Minus(oneGene))
		for twoGenes, ok := twos.Next(); ok; twoGenes, ok = twos.Next() {
			joint := jointProbability(ped, m, table, oneGene, twoGenes, haveTrait)
			dists.accumulate(oneGene, twoGenes, haveTrait, joint)
		}
	}
}

// InferWorkers is Infer with the outer trait-set loop sharded across
// nWorkers goroutines. Each worker owns a private accumulator for the
// trait sets it drains from the channel; the partials are merged by
// elementwise summation before normalizing, so no locking is needed in
// the hot loop. Results match Infer up to floating-point addition order.
func InferWorkers(ped Pedigree, m *Model, nWorkers int) (Distributions, error) {
	if nWorkers < 2 {
		return Infer(ped, m)
	}

	if err := ped.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	names := ped.Names()
	table := m.ChildGeneTable()

	traitSets := make(chan NameSet)
	partials := make(chan Distributions, nWorkers)

	var wg sync.WaitGroup
	for i := 0; i < nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			dists := NewDistributions(ped)
			for haveTrait := range traitSets {
				accumulateGeneHypotheses(ped, m, table, names, haveTrait, dists)
			}
			partials <- dists
		}()
	}

	traits := newSubsetIterator(names)
	for haveTrait, ok := traits.Next(); ok; haveTrait, ok = traits.Next() {
		if !ConsistentWithEvidence(ped, haveTrait) {
			continue
		}
		traitSets <- haveTrait
	}
	close(traitSets)

	wg.Wait()
	close(partials)

	dists := NewDistributions(ped)
	for partial := range partials {
		dists.add(partial)
	}

	if err := dists.Normalize(); err != nil {
		return nil, pfx.Err(err)
	}

	return dists, nil
}
