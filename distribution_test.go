package heredity

import (
	"errors"
	"testing"
)

func TestNormalizePreservesRatios(t *testing.T) {
	dists := Distributions{
		"A": {
			Gene:  [3]float64{3, 2, 1},
			Trait: [2]float64{1, 3},
		},
	}

	if err := dists.Normalize(); err != nil {
		t.Fatal(err)
	}

	dist := dists["A"]
	approx(t, dist.Gene[0], 0.5, 1e-12, "Gene[0]")
	approx(t, dist.Gene[1], 1.0/3, 1e-12, "Gene[1]")
	approx(t, dist.Gene[2], 1.0/6, 1e-12, "Gene[2]")
	approx(t, dist.Trait[0], 0.25, 1e-12, "Trait[false]")
	approx(t, dist.Trait[1], 0.75, 1e-12, "Trait[true]")
}

func TestNormalizeZeroMass(t *testing.T) {
	dists := Distributions{
		"A": {},
	}

	if err := dists.Normalize(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Got %v, expected ErrDivisionByZero", err)
	}
}

func TestAccumulate(t *testing.T) {
	ped := familyPedigree()
	dists := NewDistributions(ped)

	dists.accumulate(NewNameSet("Harry"), NewNameSet("James"), NewNameSet("James"), 0.5)
	dists.accumulate(NewNameSet(), NewNameSet(), NewNameSet(), 0.25)

	approx(t, dists["Harry"].Gene[1], 0.5, 0, "Harry one copy")
	approx(t, dists["Harry"].Gene[0], 0.25, 0, "Harry zero copies")
	approx(t, dists["James"].Gene[2], 0.5, 0, "James two copies")
	approx(t, dists["James"].Trait[TraitIndex(true)], 0.5, 0, "James with trait")
	approx(t, dists["James"].Trait[TraitIndex(false)], 0.25, 0, "James without trait")
	approx(t, dists["Lily"].Gene[0], 0.75, 0, "Lily zero copies")
}

func TestAddMergesElementwise(t *testing.T) {
	left := Distributions{
		"A": {Gene: [3]float64{1, 2, 3}, Trait: [2]float64{4, 5}},
	}
	right := Distributions{
		"A": {Gene: [3]float64{10, 20, 30}, Trait: [2]float64{40, 50}},
	}

	left.add(right)

	approx(t, left["A"].Gene[2], 33, 0, "Gene[2]")
	approx(t, left["A"].Trait[1], 55, 0, "Trait[1]")
}
