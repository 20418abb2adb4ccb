package reporters

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/appdotbuilder/data-mining-dashboard/miners"
	"github.com/appdotbuilder/data-mining-dashboard/rules"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

// Unique drops itemsets and rules already passed to the inner
// reporter. The miners themselves never repeat an itemset; this exists
// for chains that replay or merge results.
type Unique struct {
	SeenItemsets *set.SortedSet
	SeenRules    *set.SortedSet
	Reporter     miners.Reporter
}

func NewUnique(reporter miners.Reporter) *Unique {
	return &Unique{
		SeenItemsets: set.NewSortedSet(10),
		SeenRules:    set.NewSortedSet(10),
		Reporter:     reporter,
	}
}

func (r *Unique) Itemset(f *itemset.Frequent) error {
	label := types.ByteSlice(f.Items.Label())
	if r.SeenItemsets.Has(label) {
		return nil
	}
	r.SeenItemsets.Add(label)
	return r.Reporter.Itemset(f)
}

func (r *Unique) Rule(ru *rules.Rule) error {
	label := append(ru.Antecedent.Label(), ru.Consequent.Label()...)
	key := types.ByteSlice(label)
	if r.SeenRules.Has(key) {
		return nil
	}
	r.SeenRules.Add(key)
	return r.Reporter.Rule(ru)
}

func (r *Unique) Close() error {
	return r.Reporter.Close()
}
