package miners_test

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/appdotbuilder/data-mining-dashboard/miners/apriori"
	"github.com/appdotbuilder/data-mining-dashboard/miners/fpgrowth"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

func baskets() []itemset.Transaction {
	return []itemset.Transaction{
		itemset.NewTransaction("bread", "milk", "eggs"),
		itemset.NewTransaction("bread", "butter"),
		itemset.NewTransaction("milk", "eggs", "butter"),
		itemset.NewTransaction("bread", "milk", "butter"),
		itemset.NewTransaction("bread", "eggs"),
	}
}

func groceries() []itemset.Transaction {
	return []itemset.Transaction{
		itemset.NewTransaction("a", "b", "c", "d"),
		itemset.NewTransaction("a", "b", "c"),
		itemset.NewTransaction("a", "b"),
		itemset.NewTransaction("a", "c", "e"),
		itemset.NewTransaction("b", "c", "d", "e"),
		itemset.NewTransaction("b", "d"),
		itemset.NewTransaction("c", "d", "e"),
		itemset.NewTransaction("a", "b", "c", "d", "e"),
		itemset.NewTransaction("a"),
		itemset.NewTransaction("b", "c"),
	}
}

func keyed(freq []itemset.Frequent) map[string]float64 {
	m := make(map[string]float64, len(freq))
	for i := range freq {
		m[freq[i].Items.Key()] = freq[i].Support
	}
	return m
}

func TestMinersAgree(x *testing.T) {
	t := assert.New(x)
	for _, txs := range [][]itemset.Transaction{baskets(), groceries()} {
		for _, minSupport := range []float64{.1, .2, .3, .4, .6, 1} {
			a, err := apriori.Mine(txs, minSupport)
			t.Nil(err)
			f, err := fpgrowth.Mine(txs, minSupport)
			t.Nil(err)
			t.Equal(keyed(a), keyed(f), "miners disagree at support %v", minSupport)
		}
	}
}

func TestMinersIdempotent(x *testing.T) {
	t := assert.New(x)
	txs := groceries()
	a1, err := apriori.Mine(txs, .2)
	t.Nil(err)
	a2, err := apriori.Mine(txs, .2)
	t.Nil(err)
	t.Equal(keyed(a1), keyed(a2))
	f1, err := fpgrowth.Mine(txs, .2)
	t.Nil(err)
	f2, err := fpgrowth.Mine(txs, .2)
	t.Nil(err)
	t.Equal(keyed(f1), keyed(f2))
}

func TestAntiMonotone(x *testing.T) {
	t := assert.New(x)
	for _, mine := range []func([]itemset.Transaction, float64) ([]itemset.Frequent, error){
		apriori.Mine,
		fpgrowth.Mine,
	} {
		freq, err := mine(groceries(), .2)
		t.Nil(err)
		found := keyed(freq)
		for i := range freq {
			items := freq[i].Items
			if len(items) < 2 {
				continue
			}
			for drop := 0; drop < len(items); drop++ {
				subset := make(itemset.Itemset, 0, len(items)-1)
				subset = append(subset, items[:drop]...)
				subset = append(subset, items[drop+1:]...)
				_, has := found[subset.Key()]
				t.True(has, "subset %v of %v is not frequent", subset, items)
			}
		}
	}
}
