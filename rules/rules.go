package rules

import (
	"fmt"
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

// A Rule is one directional association antecedent -> consequent drawn
// from a frequent itemset: the two sides partition the itemset and are
// both non-empty. Support is the support of the full itemset,
// Confidence the fraction of antecedent transactions also holding the
// consequent, and Lift the ratio of the confidence to the consequent's
// base support.
type Rule struct {
	Antecedent itemset.Itemset
	Consequent itemset.Itemset
	Support    float64
	Confidence float64
	Lift       float64
}

func (r *Rule) String() string {
	return fmt.Sprintf("<%v> -> <%v> (support %g, confidence %g, lift %g)",
		r.Antecedent, r.Consequent, r.Support, r.Confidence, r.Lift)
}

// ValidConfidence rejects thresholds outside (0, 1].
func ValidConfidence(minConfidence float64) error {
	if minConfidence <= 0 || minConfidence > 1 {
		return errors.Errorf("min confidence %v out of range (0, 1]", minConfidence)
	}
	return nil
}

// Generate derives every rule meeting minConfidence from the frequent
// itemsets, whichever miner produced them. Passing a nil index builds
// an in-memory one from freq. Output is sorted by confidence
// descending, then lift descending, then by the rule's labels, so
// equal inputs always render identically.
func Generate(freq []itemset.Frequent, minConfidence float64, index SupportIndex) ([]Rule, error) {
	if err := ValidConfidence(minConfidence); err != nil {
		return nil, err
	}
	if index == nil {
		index = NewMapIndex(freq)
	}
	out := make([]Rule, 0, 10)
	for i := range freq {
		derived, err := split(&freq[i], minConfidence, index)
		if err != nil {
			return nil, err
		}
		out = append(out, derived...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		if out[i].Lift != out[j].Lift {
			return out[i].Lift > out[j].Lift
		}
		if a, b := out[i].Antecedent.Key(), out[j].Antecedent.Key(); a != b {
			return a < b
		}
		return out[i].Consequent.Key() < out[j].Consequent.Key()
	})
	return out, nil
}

// split enumerates the 2^n - 2 non-trivial bipartitions of an itemset
// into antecedent and consequent. Itemsets wider than the bitmask are
// never produced by the miners at any practical threshold.
func split(f *itemset.Frequent, minConfidence float64, index SupportIndex) ([]Rule, error) {
	n := len(f.Items)
	if n < 2 || n > 63 {
		return nil, nil
	}
	derived := make([]Rule, 0, 10)
	for mask := uint64(1); mask < (uint64(1)<<uint(n))-1; mask++ {
		antecedent := make(itemset.Itemset, 0, n)
		consequent := make(itemset.Itemset, 0, n)
		for i := 0; i < n; i++ {
			if mask&(uint64(1)<<uint(i)) != 0 {
				antecedent = append(antecedent, f.Items[i])
			} else {
				consequent = append(consequent, f.Items[i])
			}
		}
		aSupport, has, err := index.Support(antecedent.Label())
		if err != nil {
			return nil, err
		}
		if !has || aSupport == 0 {
			// the caller fed an incomplete itemset list; a skipped
			// split keeps the rest of the output usable
			continue
		}
		cSupport, has, err := index.Support(consequent.Label())
		if err != nil {
			return nil, err
		}
		if !has || cSupport == 0 {
			continue
		}
		confidence := f.Support / aSupport
		if confidence < minConfidence {
			continue
		}
		derived = append(derived, Rule{
			Antecedent: antecedent,
			Consequent: consequent,
			Support:    f.Support,
			Confidence: confidence,
			Lift:       confidence / cSupport,
		})
	}
	return derived, nil
}
