package heredity

import (
	"testing"
)

func TestPassProb(t *testing.T) {
	m := DefaultModel()

	approx(t, m.PassProb(0), 0.01, 1e-12, "PassProb(0)")
	approx(t, m.PassProb(1), 0.50, 1e-12, "PassProb(1)")
	approx(t, m.PassProb(2), 0.99, 1e-12, "PassProb(2)")
}

func TestPassProbWithoutMutation(t *testing.T) {
	m := DefaultModel()
	m.MutationRate = 0

	approx(t, m.PassProb(0), 0, 0, "PassProb(0) at zero mutation")
	approx(t, m.PassProb(1), 0.5, 0, "PassProb(1) at zero mutation")
	approx(t, m.PassProb(2), 1, 0, "PassProb(2) at zero mutation")
}

func TestDefaultModelDistributions(t *testing.T) {
	m := DefaultModel()

	approx(t, m.GenePrior[0]+m.GenePrior[1]+m.GenePrior[2], 1, 1e-9, "gene prior total")

	for g := 0; g < 3; g++ {
		sum := m.TraitProb[g][0] + m.TraitProb[g][1]
		approx(t, sum, 1, 1e-9, "trait distribution total")
	}
}

func TestTraitIndex(t *testing.T) {
	if TraitIndex(false) != 0 || TraitIndex(true) != 1 {
		t.Errorf("TraitIndex mapping is wrong: false=%d true=%d", TraitIndex(false), TraitIndex(true))
	}
}
