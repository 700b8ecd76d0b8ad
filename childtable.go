package heredity

// ChildGeneTable maps a (mother gene count, father gene count) pair onto
// the distribution over the child's gene count. Indexed as
// table[motherGenes][fatherGenes][childGenes]. It is a pure function of
// the model's mutation rate, so it is computed once per inference run and
// read-only thereafter.
type ChildGeneTable [3][3][3]float64

// ChildGeneTable derives the transmission table from the model. Each
// parent contributes one allele independently with probability
// PassProb(parent's count), so for every parent pair the three child
// probabilities sum to exactly 1.
func (m *Model) ChildGeneTable() *ChildGeneTable {
	var table ChildGeneTable

	for mg := 0; mg < 3; mg++ {
		for fg := 0; fg < 3; fg++ {
			mp := m.PassProb(mg)
			fp := m.PassProb(fg)

			table[mg][fg][0] = (1 - mp) * (1 - fp)
			table[mg][fg][1] = mp*(1-fp) + (1-mp)*fp
			table[mg][fg][2] = mp * fp
		}
	}

	return &table
}
