package heredity

// Model holds the fixed probability constants the engine conditions on:
// the unconditional gene-count prior for a person with unknown parents,
// the probability of exhibiting the trait given each gene count, and the
// per-allele mutation rate applied during transmission. A Model is plain
// data; callers that want alternate priors construct their own value (or
// load one with OpenModel) and pass it in explicitly.
type Model struct {
	// GenePrior[g] is the probability that a person with no known
	// parents carries g copies of the variant allele.
	GenePrior [3]float64

	// TraitProb[g] is the trait distribution given g gene copies,
	// indexed by TraitIndex (false=0, true=1).
	TraitProb [3][2]float64

	// MutationRate is the probability that a transmitted allele flips
	// state on the way to the child.
	MutationRate float64
}

// DefaultModel returns the standard constants: 96%/3%/1% population prior,
// trait penetrance of 1%/56%/65% for 0/1/2 copies, and a 1% mutation rate.
// The returned value is identical on every call.
func DefaultModel() *Model {
	return &Model{
		GenePrior: [3]float64{0.96, 0.03, 0.01},
		TraitProb: [3][2]float64{
			{0.99, 0.01},
			{0.44, 0.56},
			{0.35, 0.65},
		},
		MutationRate: 0.01,
	}
}

// TraitIndex maps a trait value onto its slot in a [2]float64
// distribution: false to 0, true to 1.
func TraitIndex(hasTrait bool) int {
	if hasTrait {
		return 1
	}
	return 0
}

// PassProb returns the probability that a parent carrying g copies of the
// variant allele passes it to a child, after accounting for mutation:
// g/2 * (1-mu) + (1-g/2) * mu. With the default 1% mutation rate this is
// 0.01, 0.50 and 0.99 for 0, 1 and 2 copies.
func (m *Model) PassProb(g int) float64 {
	half := float64(g) / 2
	return half*(1-m.MutationRate) + (1-half)*m.MutationRate
}
