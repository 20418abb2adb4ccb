package apriori

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/appdotbuilder/data-mining-dashboard/config"
	"github.com/appdotbuilder/data-mining-dashboard/miners"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

type Miner struct {
	MinSupport float64
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{
		MinSupport: conf.MinSupport,
	}
}

func (m *Miner) Name() string {
	return "apriori"
}

func (m *Miner) Mine(txs []itemset.Transaction) ([]itemset.Frequent, error) {
	return Mine(txs, m.MinSupport)
}

// Mine computes every itemset occurring in at least minSupport of the
// transactions, level by level: level k candidates are joins of
// frequent level k-1 itemsets and are counted against the full
// transaction list. A k-itemset can only be frequent if all of its
// k-1 subsets were, so joining from the frequent sets alone already
// prunes the candidate space.
func Mine(txs []itemset.Transaction, minSupport float64) ([]itemset.Frequent, error) {
	if err := miners.ValidSupport(minSupport); err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, miners.ErrNoTransactions
	}
	total := len(txs)
	minCount := miners.MinCount(minSupport, total)
	result := make([]itemset.Frequent, 0, 10)
	level := singletons(txs, minCount, total)
	for k := 2; len(level) > 0; k++ {
		result = append(result, level...)
		candidates := join(level, k)
		counts := itemset.CountAll(txs, candidates)
		level = survivors(candidates, counts, minCount, total)
		errors.Logf("DEBUG", "level %d: %d candidates, %d frequent", k, len(candidates), len(level))
	}
	return result, nil
}

func singletons(txs []itemset.Transaction, minCount, total int) []itemset.Frequent {
	counts := make(map[string]int)
	for _, tx := range txs {
		for _, item := range tx {
			counts[item]++
		}
	}
	items := make([]string, 0, len(counts))
	for item := range counts {
		items = append(items, item)
	}
	sort.Strings(items)
	freq := make([]itemset.Frequent, 0, len(items))
	for _, item := range items {
		if count := counts[item]; count >= minCount {
			freq = append(freq, itemset.NewFrequent(itemset.New(item), count, total))
		}
	}
	return freq
}

// join produces the deduplicated level k candidates: unions of pairs
// of frequent level k-1 itemsets sharing exactly k-2 items. Two joins
// can yield the same set, hence the seen filter.
func join(level []itemset.Frequent, k int) []itemset.Itemset {
	seen := make(map[string]bool, len(level))
	candidates := make([]itemset.Itemset, 0, len(level))
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			u := level[i].Items.Union(level[j].Items)
			if len(u) != k {
				continue
			}
			key := u.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			candidates = append(candidates, u)
		}
	}
	return candidates
}

func survivors(candidates []itemset.Itemset, counts map[string]int, minCount, total int) []itemset.Frequent {
	freq := make([]itemset.Frequent, 0, len(candidates))
	for _, c := range candidates {
		if count := counts[c.Key()]; count >= minCount {
			freq = append(freq, itemset.NewFrequent(c, count, total))
		}
	}
	return freq
}
