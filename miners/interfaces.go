package miners

import (
	"math"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/appdotbuilder/data-mining-dashboard/rules"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

// ErrNoTransactions is returned by every miner given an empty
// transaction list. An empty input is an analysis failure, not an
// empty result.
var ErrNoTransactions = errors.Errorf("no transactions given")

// A Miner computes the frequent itemsets of a transaction list. The
// implementations are interchangeable: for the same transactions and
// threshold they produce the same itemset -> support mapping.
type Miner interface {
	Name() string
	Mine(txs []itemset.Transaction) ([]itemset.Frequent, error)
}

// A Reporter consumes mining output. Reporters must tolerate Itemset
// and Rule calls in any interleaving.
type Reporter interface {
	Itemset(f *itemset.Frequent) error
	Rule(r *rules.Rule) error
	Close() error
}

// ValidSupport rejects thresholds outside (0, 1].
func ValidSupport(minSupport float64) error {
	if minSupport <= 0 || minSupport > 1 {
		return errors.Errorf("min support %v out of range (0, 1]", minSupport)
	}
	return nil
}

// MinCount converts a fractional support threshold into the smallest
// absolute transaction count satisfying it.
func MinCount(minSupport float64, total int) int {
	count := int(math.Ceil(minSupport * float64(total)))
	if count < 1 {
		count = 1
	}
	return count
}
