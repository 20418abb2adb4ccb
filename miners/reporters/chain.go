package reporters

import (
	"github.com/appdotbuilder/data-mining-dashboard/miners"
	"github.com/appdotbuilder/data-mining-dashboard/rules"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) Itemset(f *itemset.Frequent) error {
	for _, rpt := range r.Reporters {
		err := rpt.Itemset(f)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Rule(ru *rules.Rule) error {
	for _, rpt := range r.Reporters {
		err := rpt.Rule(ru)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
