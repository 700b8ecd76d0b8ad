package heredity

// HypothesisCount returns how many (trait set, one-gene set, two-gene
// set) combinations the driver enumerates for n people. Each trait set is
// one of 2^n subsets; for the gene sets, each person independently lands
// in the one-gene group, the two-gene group, or neither, for 3^n
// combinations. The product is 6^n.
func HypothesisCount(n int) uint64 {
	count := uint64(1)
	for i := 0; i < n; i++ {
		count *= 6
	}
	return count
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
