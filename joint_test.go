package heredity

import (
	"errors"
	"testing"
)

func TestJointProbabilityCanonical(t *testing.T) {
	ped := familyPedigree()
	m := DefaultModel()

	// Hand-computed: Lily carries zero copies and no trait
	// (0.96 * 0.99), James carries two copies and the trait
	// (0.01 * 0.65), and Harry carries one copy without the trait
	// given a zero-copy mother and two-copy father
	// ((0.01*0.01 + 0.99*0.99) * 0.44).
	got, err := JointProbability(ped, m, NewNameSet("Harry"), NewNameSet("James"), NewNameSet("James"))
	if err != nil {
		t.Fatal(err)
	}

	approx(t, got, 0.0026643247488, 1e-12, "joint probability")
}

func TestJointProbabilityBounds(t *testing.T) {
	ped := familyPedigree()
	m := DefaultModel()
	table := m.ChildGeneTable()
	names := ped.Names()

	traits := newSubsetIterator(names)
	for haveTrait, ok := traits.Next(); ok; haveTrait, ok = traits.Next() {
		ones := newSubsetIterator(names)
		for oneGene, ok := ones.Next(); ok; oneGene, ok = ones.Next() {
			twos := newSubsetIterator(names.Minus(oneGene))
			for twoGenes, ok := twos.Next(); ok; twoGenes, ok = twos.Next() {
				p := jointProbability(ped, m, table, oneGene, twoGenes, haveTrait)
				if p < 0 || p > 1 {
					t.Fatalf("joint probability %v is outside [0, 1]", p)
				}
			}
		}
	}
}

// The unconditional joint distribution over the full outer enumeration,
// with no evidence filtering, is a valid probability measure.
func TestJointProbabilityTotalsToOne(t *testing.T) {
	for _, ped := range []Pedigree{
		{
			"A": {Name: "A"},
			"B": {Name: "B"},
		},
		familyPedigree(),
	} {
		m := DefaultModel()
		table := m.ChildGeneTable()
		names := ped.Names()

		total := 0.0
		traits := newSubsetIterator(names)
		for haveTrait, ok := traits.Next(); ok; haveTrait, ok = traits.Next() {
			ones := newSubsetIterator(names)
			for oneGene, ok := ones.Next(); ok; oneGene, ok = ones.Next() {
				twos := newSubsetIterator(names.Minus(oneGene))
				for twoGenes, ok := twos.Next(); ok; twoGenes, ok = twos.Next() {
					total += jointProbability(ped, m, table, oneGene, twoGenes, haveTrait)
				}
			}
		}

		approx(t, total, 1, 1e-9, "total probability mass")
	}
}

func TestJointProbabilityWithoutMutation(t *testing.T) {
	ped := familyPedigree()
	m := DefaultModel()
	m.MutationRate = 0

	// With no mutation and both parents hypothesized carrier-free, any
	// hypothesis giving the child a copy is impossible.
	got, err := JointProbability(ped, m, NewNameSet("Harry"), NewNameSet(), NewNameSet("James"))
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Got %v, expected an impossible hypothesis to have probability 0", got)
	}
}

func TestJointProbabilityInvalidHypothesis(t *testing.T) {
	ped := familyPedigree()
	m := DefaultModel()

	if _, err := JointProbability(ped, m, NewNameSet("Voldemort"), NewNameSet(), NewNameSet()); !errors.Is(err, ErrInvalidHypothesis) {
		t.Errorf("Got %v, expected ErrInvalidHypothesis for an unknown name", err)
	}

	if _, err := JointProbability(ped, m, NewNameSet("Harry"), NewNameSet("Harry"), NewNameSet()); !errors.Is(err, ErrInvalidHypothesis) {
		t.Errorf("Got %v, expected ErrInvalidHypothesis for overlapping gene sets", err)
	}
}
