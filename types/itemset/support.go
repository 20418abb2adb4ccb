package itemset

// Count returns how many of the transactions are supersets of the
// candidate itemset.
func Count(txs []Transaction, candidate Itemset) int {
	count := 0
	for _, tx := range txs {
		if candidate.SubsetOf(Itemset(tx)) {
			count++
		}
	}
	return count
}

// CountAll counts every candidate in a single pass over the
// transactions. The result maps each candidate's Key to its
// transaction count.
func CountAll(txs []Transaction, candidates []Itemset) map[string]int {
	counts := make(map[string]int, len(candidates))
	for _, c := range candidates {
		counts[c.Key()] = 0
	}
	for _, tx := range txs {
		for _, c := range candidates {
			if c.SubsetOf(Itemset(tx)) {
				counts[c.Key()]++
			}
		}
	}
	return counts
}
