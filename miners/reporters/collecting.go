package reporters

import (
	"github.com/appdotbuilder/data-mining-dashboard/rules"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

type Collector struct {
	Itemsets []*itemset.Frequent
	Rules    []*rules.Rule
}

func (c *Collector) Itemset(f *itemset.Frequent) error {
	c.Itemsets = append(c.Itemsets, f)
	return nil
}

func (c *Collector) Rule(r *rules.Rule) error {
	c.Rules = append(c.Rules, r)
	return nil
}

func (c *Collector) Close() error {
	return nil
}
