package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/appdotbuilder/data-mining-dashboard/rules"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

type Log struct {
	level    string
	prefix   string
	itemsets int
	rules    int
}

func NewLog(level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{level: level, prefix: prefix}
}

func (lr *Log) Itemset(f *itemset.Frequent) error {
	lr.itemsets++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s itemset %v %v", lr.prefix, lr.itemsets, f)
	} else {
		errors.Logf(lr.level, "itemset %v %v", lr.itemsets, f)
	}
	return nil
}

func (lr *Log) Rule(r *rules.Rule) error {
	lr.rules++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s rule %v %v", lr.prefix, lr.rules, r)
	} else {
		errors.Logf(lr.level, "rule %v %v", lr.rules, r)
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
