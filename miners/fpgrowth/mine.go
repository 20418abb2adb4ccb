package fpgrowth

import (
	"sort"
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
	return "fpgrowth"
}

func (m *Miner) Mine(txs []itemset.Transaction) ([]itemset.Frequent, error) {
	return Mine(txs, m.MinSupport)
}

// Mine computes the same itemset -> support mapping as apriori.Mine by
// recursive conditional pattern base mining. Counts are tracked as
// absolute transaction counts throughout, so every emitted support is
// relative to the original transaction total even deep in the
// recursion where the local transaction universe has shrunk.
func Mine(txs []itemset.Transaction, minSupport float64) ([]itemset.Frequent, error) {
	if err := miners.ValidSupport(minSupport); err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, miners.ErrNoTransactions
	}
	total := len(txs)
	minCount := miners.MinCount(minSupport, total)
	paths := make([]path, 0, len(txs))
	for _, tx := range txs {
		if len(tx) == 0 {
			continue
		}
		paths = append(paths, path{items: []string(tx), count: 1})
	}
	freq := make([]itemset.Frequent, 0, 10)
	growth(paths, minCount, nil, func(items itemset.Itemset, count int) {
		freq = append(freq, itemset.NewFrequent(items, count, total))
	})
	return freq, nil
}

// growth mines one conditional tree. Header items are visited in
// ascending aggregate count so the deepest recursions run over the
// smallest pattern bases, and so repeated runs emit patterns in the
// same order. Recursion bottoms out when a pattern base comes up
// empty or the tree retains no items at all.
func growth(paths []path, minCount int, prefix itemset.Itemset, emit func(itemset.Itemset, int)) {
	t := newTree(paths, minCount)
	order := make([]header, len(t.headers))
	copy(order, t.headers)
	sort.Slice(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count < order[j].count
		}
		return order[i].item < order[j].item
	})
	for _, h := range order {
		items := prefix.Union(itemset.New(h.item))
		emit(items, h.count)
		base := t.conditionalPatternBase(h.item)
		if len(base) > 0 {
			growth(base, minCount, items, emit)
		}
	}
}
