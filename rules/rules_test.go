package rules

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/appdotbuilder/data-mining-dashboard/stores/bytes_float"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

// the frequent itemsets of the basket fixture at min support .4
func basketItemsets() []itemset.Frequent {
	return []itemset.Frequent{
		itemset.NewFrequent(itemset.New("bread"), 4, 5),
		itemset.NewFrequent(itemset.New("milk"), 3, 5),
		itemset.NewFrequent(itemset.New("eggs"), 3, 5),
		itemset.NewFrequent(itemset.New("butter"), 3, 5),
		itemset.NewFrequent(itemset.New("bread", "milk"), 2, 5),
		itemset.NewFrequent(itemset.New("bread", "eggs"), 2, 5),
		itemset.NewFrequent(itemset.New("bread", "butter"), 2, 5),
		itemset.NewFrequent(itemset.New("eggs", "milk"), 2, 5),
		itemset.NewFrequent(itemset.New("butter", "milk"), 2, 5),
	}
}

func find(rs []Rule, antecedent, consequent itemset.Itemset) *Rule {
	for i := range rs {
		if rs[i].Antecedent.Equal(antecedent) && rs[i].Consequent.Equal(consequent) {
			return &rs[i]
		}
	}
	return nil
}

func TestGenerateBaskets(x *testing.T) {
	t := assert.New(x)
	rs, err := Generate(basketItemsets(), .5, nil)
	t.Nil(err)
	// every pair splits in both directions and all splits clear .5
	t.Equal(10, len(rs))
	r := find(rs, itemset.New("bread"), itemset.New("milk"))
	t.NotNil(r)
	t.InDelta(.4, r.Support, 1e-9)
	t.InDelta(.5, r.Confidence, 1e-9)
	t.InDelta(.5/.6, r.Lift, 1e-9)
	r = find(rs, itemset.New("milk"), itemset.New("bread"))
	t.NotNil(r)
	t.InDelta(.4/.6, r.Confidence, 1e-9)
	t.InDelta((.4/.6)/.8, r.Lift, 1e-9)
}

func TestGenerateInvariants(x *testing.T) {
	t := assert.New(x)
	freq := basketItemsets()
	index := NewMapIndex(freq)
	rs, err := Generate(freq, .5, nil)
	t.Nil(err)
	for i := range rs {
		r := &rs[i]
		t.True(r.Confidence >= .5, "confidence %v < .5", r.Confidence)
		for _, item := range r.Antecedent {
			t.False(r.Consequent.Has(item), "rule %v is not a partition", r)
		}
		union := r.Antecedent.Union(r.Consequent)
		uSupport, has, err := index.Support(union.Label())
		t.Nil(err)
		t.True(has, "union %v of rule %v is not frequent", union, r)
		aSupport, _, err := index.Support(r.Antecedent.Label())
		t.Nil(err)
		t.InDelta(uSupport/aSupport, r.Confidence, 1e-9)
	}
}

func TestGenerateSorted(x *testing.T) {
	t := assert.New(x)
	rs, err := Generate(basketItemsets(), .5, nil)
	t.Nil(err)
	for i := 1; i < len(rs); i++ {
		if rs[i-1].Confidence == rs[i].Confidence {
			t.True(rs[i-1].Lift >= rs[i].Lift)
		} else {
			t.True(rs[i-1].Confidence > rs[i].Confidence)
		}
	}
}

func TestGenerateConfidenceFiltersAll(x *testing.T) {
	t := assert.New(x)
	rs, err := Generate(basketItemsets(), 1, nil)
	t.Nil(err)
	t.Equal(0, len(rs))
}

func TestGenerateSkipsMissingSupports(x *testing.T) {
	t := assert.New(x)
	freq := make([]itemset.Frequent, 0, 8)
	for _, f := range basketItemsets() {
		if f.Items.Has("butter") && len(f.Items) == 1 {
			continue
		}
		freq = append(freq, f)
	}
	rs, err := Generate(freq, .5, nil)
	t.Nil(err)
	// without butter's own support neither direction over the butter
	// pairs can be scored, the rest is unaffected
	t.Equal(6, len(rs))
	for i := range rs {
		t.False(rs[i].Antecedent.Has("butter"), "rule %v kept a skipped antecedent", &rs[i])
		t.False(rs[i].Consequent.Has("butter"), "rule %v kept a skipped consequent", &rs[i])
	}
}

func TestGenerateBadConfidence(x *testing.T) {
	t := assert.New(x)
	_, err := Generate(basketItemsets(), 0, nil)
	t.NotNil(err)
	_, err = Generate(basketItemsets(), 1.5, nil)
	t.NotNil(err)
}

func TestStoreIndex(x *testing.T) {
	t := assert.New(x)
	supports, err := bytes_float.AnonBpTree()
	t.Nil(err)
	freq := basketItemsets()
	idx, err := NewStoreIndex(supports, freq)
	t.Nil(err)
	defer idx.Close()
	s, has, err := idx.Support(itemset.New("bread").Label())
	t.Nil(err)
	t.True(has)
	t.InDelta(.8, s, 1e-9)
	_, has, err = idx.Support(itemset.New("tea").Label())
	t.Nil(err)
	t.False(has)
	fromStore, err := Generate(freq, .5, idx)
	t.Nil(err)
	fromMap, err := Generate(freq, .5, nil)
	t.Nil(err)
	t.Equal(fromMap, fromStore)
}
