package reporters

import (
	"github.com/appdotbuilder/data-mining-dashboard/miners"
	"github.com/appdotbuilder/data-mining-dashboard/rules"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

// Skip forwards every n-th itemset and every n-th rule to the inner
// reporter.
type Skip struct {
	Skip     int
	Reporter miners.Reporter
	itemsets int
	rules    int
}

func NewSkip(n int, rptr miners.Reporter) *Skip {
	return &Skip{
		Skip:     n,
		Reporter: rptr,
	}
}

func (r *Skip) Itemset(f *itemset.Frequent) error {
	r.itemsets++
	if r.itemsets%r.Skip == 0 {
		return r.Reporter.Itemset(f)
	}
	return nil
}

func (r *Skip) Rule(ru *rules.Rule) error {
	r.rules++
	if r.rules%r.Skip == 0 {
		return r.Reporter.Rule(ru)
	}
	return nil
}

func (r *Skip) Close() error {
	return r.Reporter.Close()
}
